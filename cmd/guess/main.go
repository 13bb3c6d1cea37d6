package main

import (
	"context"
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteGuess(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
