// Package main is the entry point for the mgbloom trace replayer.
package main

import (
	"os"

	"github.com/brianolson/mgbloom/cmd/mgbloom/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
