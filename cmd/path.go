package cmd

import (
	"fmt"
	"os"

	"github.com/tonhe/vistaconf/internal/config"
)

func pathCmd() {
	path, err := config.DefaultConfigPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(path)
}
