package downloader

import "fmt"

type Kind int

const (
	// Downloaded means the payload was written to disk.
	Downloaded Kind = iota
	// Failed means a non 2xx status, nothing written.
	Failed
	// Errored means the request never got a response.
	Errored
)

func (k Kind) String() string {
	switch k {
	case Downloaded:
		return "downloaded"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Outcome of one download. Never persisted.
//
type Outcome struct {
	Kind       Kind
	FileID     string
	FileName   string
	Path       string // set when Downloaded
	Size       int64  // payload bytes, before any compression
	StatusCode int    // set when Downloaded or Failed
	Status     string // status line, e.g. "404 Not Found"
	Err        error  // set when Errored
}

// Message is the human readable log line for the outcome.
func (o Outcome) Message() string {
	switch o.Kind {
	case Downloaded:
		return fmt.Sprintf("Downloaded %s to %s", o.FileName, o.Path)
	case Failed:
		return fmt.Sprintf("Failed to download %s: %d", o.FileID, o.StatusCode)
	default:
		msg := "unknown error"
		if o.Err != nil {
			msg = o.Err.Error()
		}
		return fmt.Sprintf("Error downloading %s: %s", o.FileID, msg)
	}
}
