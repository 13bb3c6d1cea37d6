// Package guess is the number guessing game: one secret per run, guesses
// read line by line until one matches.
package guess

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Closed range the secret is drawn from.
const (
	Min = 1
	Max = 100
)

var ErrInvalidGuess = errors.New("invalid guess")

// Outcome is the result of comparing one guess with the secret.
type Outcome int

const (
	TooSmall Outcome = iota - 1
	Correct
	TooBig
)

func (o Outcome) String() string {
	switch o {
	case TooSmall:
		return "Too small!"
	case TooBig:
		return "Too big!"
	default:
		return "You win!"
	}
}

// Game holds the secret for one session. It is never re-drawn.
type Game struct {
	secret uint32
}

// Option tunes a Game.
type Option func(*gameOptions)

type gameOptions struct {
	rng    *rand.Rand
	secret uint32
}

// WithRand draws the secret from r instead of the global source.
func WithRand(r *rand.Rand) Option {
	return func(o *gameOptions) { o.rng = r }
}

// WithSecret fixes the secret. Values outside [Min,Max] are ignored.
func WithSecret(n uint32) Option {
	return func(o *gameOptions) {
		if n >= Min && n <= Max {
			o.secret = n
		}
	}
}

// New draws a secret uniformly from [Min,Max].
func New(opts ...Option) *Game {
	var o gameOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.secret != 0 {
		return &Game{secret: o.secret}
	}
	var n int
	if o.rng != nil {
		n = o.rng.IntN(Max-Min+1) + Min
	} else {
		n = rand.IntN(Max-Min+1) + Min
	}
	return &Game{secret: uint32(n)}
}

// Check compares a guess with the secret.
func (g *Game) Check(n uint32) Outcome {
	switch {
	case n < g.secret:
		return TooSmall
	case n > g.secret:
		return TooBig
	default:
		return Correct
	}
}

// ParseGuess reads one line as an unsigned 32-bit integer.
func ParseGuess(line string) (uint32, error) {
	s := strings.TrimSpace(line)
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidGuess, s)
	}
	return uint32(n), nil
}
