package main

import (
	"os"

	"github.com/nasrallahilyass/Personal-Diary-APP/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
