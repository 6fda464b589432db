package cmd

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

func showCmd(args []string) {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	file := fs.String("f", "", "Configuration file path")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: vistaconf show [-f FILE] [HOST ...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := loadConfig(*file, fs.Args())

	fmt.Printf("Global waittime: %s\n\n", cfg.WaitTime)

	if len(cfg.Servers) == 0 {
		fmt.Println("No servers configured.")
	} else {
		fmt.Printf("%-40s  %10s\n", "Server", "Waittime")
		fmt.Printf("%-40s  %10s\n", "------", "--------")
		overrides := false
		for i := range cfg.Servers {
			srv := &cfg.Servers[i]
			mark := ""
			if srv.WaitTime > 0 {
				mark = " *"
				overrides = true
			}
			fmt.Printf("%-40s  %10s%s\n", truncate(srv.Address, 40), cfg.WaitTimeFor(srv), mark)
		}
		if overrides {
			fmt.Println("\n* per-server override")
		}
	}

	fmt.Println()
	if cfg.Layout == nil {
		fmt.Println("No layout declared.")
		return
	}

	l := cfg.Layout
	fmt.Printf("Layout: header=%v errlog=%d\n", l.ShowHeader, l.ErrLogRows)
	for i, b := range l.Boxes {
		opts := strings.Join(b.Options.Names(), " ")
		if opts == "" {
			opts = "-"
		}
		fmt.Printf("  %2d  %-8s  %s\n", i+1, b.Category, opts)
	}
}

// truncate shortens a string to the given max length, adding "..." if needed.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
