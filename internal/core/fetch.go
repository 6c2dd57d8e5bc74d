package core

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"

	"github.com/edward-yakop/go-substorage/internal/misc"
)

const (
	// "https://toto.dola/api/storage/substorage/{fileId}/download"
	SubstorageTmplURL = "%s/api/storage/substorage/%s/download"
	DefaultEndpoint   = "https://toto.dola"
	xzExt             = ".xz"
)

var (
	log = misc.NewLogger("Fetch", 2)
)

type HTTPFetch struct {
	client *resty.Client
}

// NewFetcher returns a resty backed Fetcher: no timeout, no retry, no custom headers.
func NewFetcher() Fetcher {
	client := resty.New().
		SetRetryCount(0).
		SetLogger(restyLogger{log})
	return &HTTPFetch{
		client: client,
	}
}

func (h HTTPFetch) Fetch(ctx context.Context, URL string) (*Response, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(URL)
	if err != nil {
		return nil, errors.Wrap(err, "GET ["+URL+"] failed")
	}

	log.Trace("GET %s: %s (%d bytes).", URL, resp.Status(), len(resp.Body()))
	return &Response{
		StatusCode: resp.StatusCode(),
		Status:     resp.Status(),
		Body:       resp.Body(),
	}, nil
}

// SaveToDisk writes body to path, overwriting any existing file. With compress
// the payload is xz encoded and written to path + ".xz".
func SaveToDisk(path string, body []byte, compress bool) (written string, filesize int64, err error) {
	if err = misc.EnsureDir(filepath.Dir(path)); err != nil {
		return
	}

	written = path
	if compress {
		written = path + xzExt
	}
	if misc.IsFileExists(written) {
		log.Trace("Overwriting %s.", written)
	}

	f, err := os.OpenFile(written, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0666)
	if err != nil {
		err = errors.Wrap(err, "Create file ["+written+"] failed")
		return
	}
	defer f.Close()

	var w io.Writer = f
	var xw *xz.Writer
	if compress {
		if xw, err = xz.NewWriter(f); err != nil {
			err = errors.Wrap(err, "Create xz writer ["+written+"] failed")
			return
		}
		w = xw
	}

	filesize, err = io.Copy(w, bytes.NewReader(body))
	if err != nil {
		err = errors.Wrap(err, "Saving file ["+written+"] failed")
		return
	}
	if xw != nil {
		if err = xw.Close(); err != nil {
			err = errors.Wrap(err, "Flushing xz stream ["+written+"] failed")
			return
		}
	}

	err = f.Close()
	if err != nil {
		err = errors.Wrap(err, "Closing file ["+written+"] failed")
	}
	return
}

type restyLogger struct {
	l misc.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) { r.l.Error(format, v...) }
func (r restyLogger) Warnf(format string, v ...interface{})  { r.l.Warn(format, v...) }
func (r restyLogger) Debugf(format string, v ...interface{}) { r.l.Trace(format, v...) }
