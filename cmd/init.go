package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/tonhe/vistaconf/internal/config"
)

// starterConfig is written by init. The language has no comment syntax, so
// the sample has to speak for itself. Punctuation stays whitespace-
// separated; the tokenizer treats "host{" as one word.
const starterConfig = `waittime 60 ;

servers localhost ;

layout {
  header ;
  errlog 5 ;
  host { cpu qmin hour ; mem qmin ; net ; link ip state ; host ; } ;
} ;
`

func initCmd(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite an existing configuration")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: vistaconf init [-force]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	path, err := config.DefaultConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !*force {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Error: %s already exists (use -force to overwrite)\n", path)
			os.Exit(1)
		}
	}

	if err := config.EnsureConfigDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directory: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, []byte(starterConfig), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s\n", path)
}
