package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/edward-yakop/go-substorage/internal/app"
	"github.com/edward-yakop/go-substorage/internal/misc"
)

func main() {
	args := app.ArgsList{}
	flag.StringVar(&args.Config,
		"config", "",
		"optional YAML batch file")
	flag.StringVar(&args.Endpoint,
		"endpoint", "",
		"substorage scheme and host (default https://toto.dola)")
	flag.StringVar(&args.IDs,
		"ids", "",
		"file ids to download, comma separated (default 12345,67890,abcde)")
	flag.StringVar(&args.Pattern,
		"pattern", "",
		"output file name pattern (default customPattern)")
	flag.StringVar(&args.Extension,
		"ext", "",
		"output file extension (default csv)")
	flag.StringVar(&args.Output,
		"output", "",
		"destination directory to save the files (default .)")
	flag.BoolVar(&args.Compress,
		"xz", false,
		"save files xz compressed")
	flag.BoolVar(&args.Verbose,
		"verbose", false,
		"verbose output trace log")
	flag.Parse()

	if err := misc.SetupConsole(args.Verbose); err != nil {
		fmt.Printf("[App] Create console logger failed: %v.\n", err)
		os.Exit(1)
	}

	opt, err := app.ParseOption(args)
	if err != nil {
		fmt.Println("--------------------------------------------")
		fmt.Printf("Error: %s\n", err)
		fmt.Println("--------------------------------------------")
		fmt.Println("Usage:")
		flag.PrintDefaults()
		misc.StopLogging()
		os.Exit(2)
	}

	fmt.Printf("  Endpoint: %s\n", opt.Endpoint)
	fmt.Printf("    Output: %s\n", opt.Folder)
	fmt.Printf("    Naming: %s\n", opt.Scheme)
	fmt.Printf("     Files: %d\n", len(opt.FileIDs))
	fmt.Printf("        Xz: %t\n", opt.Compress)

	if err = app.NewApp(opt).Execute(context.Background()); err != nil {
		misc.NewLogger("App", 2).Fatal("%v", err)
	}
	misc.StopLogging()
}
