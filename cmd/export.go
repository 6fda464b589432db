package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tonhe/vistaconf/internal/config"
)

func exportCmd(args []string) {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	file := fs.String("f", "", "Configuration file path")
	out := fs.String("o", "", "Output file (default: stdout)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: vistaconf export [-f FILE] [-o OUT] [HOST ...]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := loadConfig(*file, fs.Args())

	var w io.Writer = os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		w = f
	}

	if err := config.WriteSnapshot(w, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting configuration: %v\n", err)
		os.Exit(1)
	}
}
