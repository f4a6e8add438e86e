package main

import (
	"os"

	"github.com/npillmayer/shadowcss/cmd/shadowcss/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
