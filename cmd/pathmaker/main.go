package main

import (
	"fmt"
	"os"

	"github.com/infinite-iroha/pathmaker/internal/config"
)

func main() {
	root := NewRootCommand(config.NewLoader())
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
