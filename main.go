package main

import (
	"os"

	"github.com/tonhe/vistaconf/cmd"
)

func main() {
	cmd.Execute(os.Args[1:])
}
