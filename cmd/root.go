package cmd

import (
	"fmt"
	"os"

	"github.com/tonhe/vistaconf/internal/config"
)

// knownSubcommands is the set of CLI subcommands.
var knownSubcommands = map[string]bool{
	"check":   true,
	"show":    true,
	"preview": true,
	"export":  true,
	"init":    true,
	"path":    true,
	"version": true,
	"help":    true,
}

// IsSubcommand returns true if the argument is a known CLI subcommand.
func IsSubcommand(arg string) bool {
	return knownSubcommands[arg]
}

// Execute dispatches to the appropriate subcommand handler.
func Execute(args []string) {
	if len(args) == 0 {
		printUsage()
		return
	}

	switch args[0] {
	case "check":
		checkCmd(args[1:])
	case "show":
		showCmd(args[1:])
	case "preview":
		previewCmd(args[1:])
	case "export":
		exportCmd(args[1:])
	case "init":
		initCmd(args[1:])
	case "path":
		pathCmd()
	case "version":
		fmt.Println("vistaconf v0.1.0")
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vistaconf - configuration tool for the vista monitor

Usage:
  vistaconf check [-f FILE] [HOST ...]      Validate a configuration
  vistaconf show [-f FILE] [HOST ...]       Show the resolved configuration
  vistaconf preview [-f FILE] [-w WIDTH]    Preview the configured layout
  vistaconf export [-f FILE] [-o OUT] [HOST ...]
                                            Export the configuration as TOML
  vistaconf init [-force]                   Write a starter configuration
  vistaconf path                            Show the default config file path
  vistaconf version                         Show version
  vistaconf help                            Show this help

HOST arguments replace any servers declared in the file, exactly as they
do when passed to the monitor itself. When FILE is omitted the default
path is used, and a missing file is not an error: the configuration is
then built from the HOST list alone.`)
}

// loadConfig parses the configuration at the -f path, or the default
// location when the flag was empty, applying the HOST override list.
func loadConfig(file string, hosts []string) *config.Config {
	path := file
	if path == "" {
		p, err := config.DefaultConfigPath()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		path = p
	}

	cfg, err := config.Parse(path, hosts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
