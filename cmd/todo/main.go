package main

import (
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

func main() {
	os.Exit(cli.ExecuteTodo(os.Args[1:], os.Stdout, os.Stderr))
}
