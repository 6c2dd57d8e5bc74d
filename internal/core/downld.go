package core

import "context"

// Response of a single GET, body fully read in memory.
type Response struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports a 2xx status.
func (r Response) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Fetcher interface...
type Fetcher interface {
	Fetch(ctx context.Context, URL string) (*Response, error)
}
