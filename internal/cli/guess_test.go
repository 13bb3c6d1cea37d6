package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Makepad-fr/tada/internal/guess"
)

func runGuess(input string, args ...string) (int, string, string) {
	var out, errOut bytes.Buffer
	code := ExecuteGuess(context.Background(), args, strings.NewReader(input), &out, &errOut, guess.WithSecret(30))
	return code, out.String(), errOut.String()
}

func TestGuessWin(t *testing.T) {
	code, out, _ := runGuess("50\nnope\n20\n30\n")
	assert.Equal(t, ExitOK, code)
	assert.Contains(t, out, "Too big!")
	assert.Contains(t, out, "Please enter a valid number!")
	assert.Contains(t, out, "Too small!")
	assert.Contains(t, out, "You win!")
}

func TestGuessInputClosed(t *testing.T) {
	code, _, errOut := runGuess("1\n")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "input closed")
}

func TestGuessRejectsArgs(t *testing.T) {
	code, _, errOut := runGuess("30\n", "extra")
	assert.Equal(t, ExitUsage, code)
	assert.Contains(t, errOut, "Usage:")
}
