package main

import (
	"os"

	"github.com/abhisek/lessonlint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
