package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/edward-yakop/go-substorage/api/naming"
	"github.com/edward-yakop/go-substorage/api/substorage/downloader"
	"github.com/edward-yakop/go-substorage/internal/config"
	"github.com/edward-yakop/go-substorage/internal/core"
	"github.com/edward-yakop/go-substorage/internal/misc"
)

var (
	log = misc.NewLogger("App", 2)
)

// ArgsList raw command line values, empty means not given.
type ArgsList struct {
	Verbose   bool
	Compress  bool
	Config    string
	Endpoint  string
	Output    string
	Pattern   string
	Extension string
	IDs       string
}

// SubstorageApp downloads one batch of substorage files
//
type SubstorageApp struct {
	option     AppOption
	downloader *downloader.Downloader
}

// AppOption batch options
//
type AppOption struct {
	Endpoint string
	Folder   string
	Scheme   naming.Scheme
	FileIDs  []string
	Compress bool
	Fetcher  core.Fetcher
}

// ParseOption layers the command line over the config file and environment
//
func ParseOption(args ArgsList) (*AppOption, error) {
	cfg, err := config.Load(args.Config)
	if err != nil {
		return nil, err
	}

	if args.Endpoint != "" {
		cfg.Endpoint = args.Endpoint
	}
	if args.Output != "" {
		cfg.Output = args.Output
	}
	if args.Pattern != "" {
		cfg.Pattern = args.Pattern
	}
	if args.Extension != "" {
		cfg.Extension = args.Extension
	}
	if args.IDs != "" {
		cfg.FileIDs = config.SplitIDs(args.IDs)
	}
	if args.Compress {
		cfg.Compress = true
	}

	opt := AppOption{
		Endpoint: strings.TrimSuffix(cfg.Endpoint, "/"),
		Scheme:   naming.New(cfg.Pattern, cfg.Extension),
		FileIDs:  cfg.FileIDs,
		Compress: cfg.Compress,
	}
	if opt.Endpoint == "" {
		return nil, fmt.Errorf("invalid endpoint parameter")
	}
	if cfg.Pattern == "" {
		return nil, fmt.Errorf("invalid pattern parameter")
	}
	if cfg.Extension == "" {
		return nil, fmt.Errorf("invalid extension parameter")
	}
	if len(opt.FileIDs) == 0 {
		return nil, fmt.Errorf("no file ids to download")
	}
	if opt.Folder, err = filepath.Abs(cfg.Output); err != nil {
		return nil, errors.Wrap(err, "invalid destination folder")
	}

	return &opt, nil
}

// NewApp create an application instance by input arguments
//
func NewApp(opt *AppOption) *SubstorageApp {
	return &SubstorageApp{
		option: *opt,
		downloader: downloader.NewDownloader(downloader.Options{
			Endpoint: opt.Endpoint,
			Folder:   opt.Folder,
			Compress: opt.Compress,
			Fetcher:  opt.Fetcher,
		}),
	}
}

// Execute runs the batch, returning only a write failure
//
func (app *SubstorageApp) Execute(ctx context.Context) error {
	var (
		opt       = app.option
		runID     = uuid.New().String()
		startTime = time.Now()
	)

	log.Info("Batch %s: %d file(s) as %s into %s.", runID, len(opt.FileIDs), opt.Scheme, opt.Folder)

	err := app.downloader.DownloadAll(ctx, opt.FileIDs, opt.Scheme, downloader.LogListener(log))
	if err != nil {
		return errors.Wrap(err, "Batch ["+runID+"] aborted")
	}

	log.Info("Batch %s time cost: %v.", runID, time.Since(startTime))
	return nil
}
