package cmd

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tonhe/vistaconf/internal/preview"
)

func previewCmd(args []string) {
	fs := flag.NewFlagSet("preview", flag.ExitOnError)
	file := fs.String("f", "", "Configuration file path")
	width := fs.Int("w", 0, "Render width (default: terminal width)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: vistaconf preview [-f FILE] [-w WIDTH]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := loadConfig(*file, fs.Args())

	w := *width
	if w <= 0 {
		if tw, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			w = tw
		} else {
			w = 80
		}
	}

	fmt.Print(preview.Render(cfg.Layout, w))
}
