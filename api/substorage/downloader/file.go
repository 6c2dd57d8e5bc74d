package downloader

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/edward-yakop/go-substorage/api/naming"
	"github.com/edward-yakop/go-substorage/internal/core"
	"github.com/edward-yakop/go-substorage/internal/misc"
)

var log = misc.NewLogger("Substorage", 2)

// Listener receives every outcome in input order, curr is 1 based.
type Listener func(outcome Outcome, curr, count int)

var doNothingListener Listener = func(outcome Outcome, curr, count int) {
	// Do nothing. This is a substitution when listener is passed as nil in DownloadAll
}

// LogListener writes one log line per outcome.
func LogListener(l misc.Logger) Listener {
	return func(o Outcome, curr, count int) {
		switch o.Kind {
		case Downloaded:
			l.Info("%s", o.Message())
		case Failed:
			l.Warn("%s", o.Message())
		default:
			l.Error("%s", o.Message())
		}
		l.Trace("%d/%d done.", curr, count)
	}
}

// Options for NewDownloader. Zero values fall back to the public endpoint,
// the working directory and a resty fetcher.
type Options struct {
	Endpoint string
	Folder   string
	Compress bool
	Fetcher  core.Fetcher
}

type Downloader struct {
	endpoint string
	folder   string
	compress bool
	fetcher  core.Fetcher
}

func NewDownloader(opt Options) *Downloader {
	d := &Downloader{
		endpoint: opt.Endpoint,
		folder:   opt.Folder,
		compress: opt.Compress,
		fetcher:  opt.Fetcher,
	}
	if d.endpoint == "" {
		d.endpoint = core.DefaultEndpoint
	}
	if d.folder == "" {
		d.folder = "."
	}
	if d.fetcher == nil {
		d.fetcher = core.NewFetcher()
	}
	return d
}

// FileURL returns the download link of fileID under endpoint.
func FileURL(endpoint, fileID string) string {
	return fmt.Sprintf(core.SubstorageTmplURL, endpoint, fileID)
}

// Download issues one GET for fileID. HTTP and transport failures are reported
// through the Outcome, only a failed write returns an error.
func (d Downloader) Download(ctx context.Context, fileID string, scheme naming.Scheme) (Outcome, error) {
	fileName := scheme.FileName(fileID)
	outcome := Outcome{
		FileID:   fileID,
		FileName: fileName,
	}

	resp, err := d.fetcher.Fetch(ctx, FileURL(d.endpoint, fileID))
	if err != nil {
		outcome.Kind = Errored
		outcome.Err = errors.Cause(err)
		return outcome, nil
	}

	outcome.StatusCode = resp.StatusCode
	outcome.Status = resp.Status
	if !resp.OK() {
		outcome.Kind = Failed
		log.Trace("%s answered %s.", fileID, resp.Status)
		return outcome, nil
	}

	written, size, err := core.SaveToDisk(filepath.Join(d.folder, fileName), resp.Body, d.compress)
	if err != nil {
		return outcome, errors.Wrap(err, "Failed to save ["+fileID+"]")
	}

	outcome.Kind = Downloaded
	outcome.Path = written
	outcome.Size = size
	return outcome, nil
}

// DownloadAll downloads fileIDs one after the other. Failed and errored
// downloads do not stop the batch, a write failure does.
func (d Downloader) DownloadAll(ctx context.Context, fileIDs []string, scheme naming.Scheme, listener Listener) error {
	if listener == nil {
		listener = doNothingListener
	}

	count := len(fileIDs)
	for i, fileID := range fileIDs {
		outcome, err := d.Download(ctx, fileID, scheme)
		if err != nil {
			log.Error("Batch stopped at %s (%d/%d): %v.", fileID, i+1, count, err)
			return err
		}
		listener(outcome, i+1, count)
	}
	return nil
}
