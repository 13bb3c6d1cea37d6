package guess

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ErrInputClosed means input ran out before the secret was found.
var ErrInputClosed = errors.New("input closed before the number was guessed")

var (
	bannerColor = color.New(color.FgCyan, color.Bold)
	promptColor = color.New(color.FgYellow)
	warnColor   = color.New(color.FgRed)
	hintColor   = color.New(color.FgBlue)
	winColor    = color.New(color.FgGreen, color.Bold)
)

// Result summarises a finished session.
type Result struct {
	Secret   uint32
	Attempts int // numeric guesses only
}

type line struct {
	text string
	err  error
}

// readLines feeds in line by line until it fails or done is closed.
// Lines have no length limit.
func readLines(in io.Reader, done <-chan struct{}) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		br := bufio.NewReader(in)
		for {
			s, err := br.ReadString('\n')
			if s != "" || err == nil {
				select {
				case ch <- line{text: s}:
				case <-done:
					return
				}
			}
			if err != nil {
				select {
				case ch <- line{err: err}:
				case <-done:
				}
				return
			}
		}
	}()
	return ch
}

// Play runs the interactive loop until a guess matches, input ends, or ctx
// is cancelled. Invalid lines are reported and do not count as attempts.
// A cancelled ctx returns at once even while waiting for input; the pending
// read on in is abandoned.
func (g *Game) Play(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	res := Result{Secret: g.secret}

	bannerColor.Fprintln(out, "Welcome to the Number Guessing Game!")
	fmt.Fprintf(out, "Try to guess the number between %d and %d.\n", Min, Max)

	done := make(chan struct{})
	defer close(done)
	lines := readLines(in, done)

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		fmt.Fprintln(out)
		promptColor.Fprintln(out, "Please input your guess:")

		var ln line
		select {
		case <-ctx.Done():
			return res, ctx.Err()
		case ln = <-lines:
		}
		if ln.err != nil {
			if errors.Is(ln.err, io.EOF) {
				return res, ErrInputClosed
			}
			return res, fmt.Errorf("read guess: %w", ln.err)
		}

		n, err := ParseGuess(ln.text)
		if err != nil {
			warnColor.Fprintln(out, "Please enter a valid number!")
			continue
		}
		res.Attempts++

		fmt.Fprintf(out, "You guessed: %d\n", n)
		switch o := g.Check(n); o {
		case Correct:
			winColor.Fprintf(out, "%s 🎉\n", o)
			return res, nil
		default:
			hintColor.Fprintln(out, o.String())
		}
	}
}
