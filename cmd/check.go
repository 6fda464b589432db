package cmd

import (
	"flag"
	"fmt"
	"os"
)

func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	file := fs.String("f", "", "Configuration file path")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: vistaconf check [-f FILE] [HOST ...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := loadConfig(*file, fs.Args())

	if cfg.Layout == nil {
		fmt.Printf("Configuration OK: %d servers, no layout\n", len(cfg.Servers))
	} else {
		fmt.Printf("Configuration OK: %d servers, %d boxes\n", len(cfg.Servers), len(cfg.Layout.Boxes))
	}
	if len(cfg.Servers) == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no servers configured; the monitor will have nothing to poll")
	}
}
