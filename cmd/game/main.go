package main

import (
	"fmt"
	"os"

	"github.com/tatianab/trail-game/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
