package main

import (
	"os"

	"github.com/Makepad-fr/tada/internal/cli"
)

// The root package builds the todo binary so `go run .` keeps working.
func main() {
	os.Exit(cli.ExecuteTodo(os.Args[1:], os.Stdout, os.Stderr))
}
