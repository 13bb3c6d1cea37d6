package todo

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Makepad-fr/tada/internal/model"
)

// MinIDPrefix is the shortest id prefix accepted as a reference.
const MinIDPrefix = 4

var (
	ErrInvalidRef   = errors.New("invalid item reference")
	ErrAmbiguousRef = errors.New("ambiguous item reference")
)

// Ref addresses one item, either by 1-based position or by id prefix.
// Positions shift after every removal; ids don't.
type Ref struct {
	Position int
	ID       string
}

func (r Ref) String() string {
	if r.ID != "" {
		return r.ID
	}
	return strconv.Itoa(r.Position)
}

// Position builds a positional reference.
func Position(n int) Ref { return Ref{Position: n} }

// ParseRef reads a CLI argument. All digits is a position, anything else must
// look like the start of a UUID. Positions too large for an int are clamped;
// they can never match an item and resolve to ErrNotFound.
func ParseRef(s string) (Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Ref{}, fmt.Errorf("%w: empty", ErrInvalidRef)
	}
	if isDigits(s) {
		n, err := strconv.ParseUint(s, 10, 64)
		if err != nil || n > math.MaxInt {
			return Ref{Position: math.MaxInt}, nil
		}
		return Ref{Position: int(n)}, nil
	}
	if len(s) < MinIDPrefix || !isIDChars(s) {
		return Ref{}, fmt.Errorf("%w: %q is neither a position nor an id", ErrInvalidRef, s)
	}
	return Ref{ID: strings.ToLower(s)}, nil
}

// resolve maps a ref onto a slice index.
func resolve(items []model.Item, ref Ref) (int, error) {
	if ref.ID == "" {
		// 0 is rejected rather than aliased to the first item.
		if ref.Position < 1 || ref.Position > len(items) {
			return -1, ErrNotFound
		}
		return ref.Position - 1, nil
	}

	found := -1
	for i, it := range items {
		if !strings.HasPrefix(strings.ToLower(it.ID), ref.ID) {
			continue
		}
		if found >= 0 {
			return -1, ErrAmbiguousRef
		}
		found = i
	}
	if found < 0 {
		return -1, ErrNotFound
	}
	return found, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isIDChars(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F', c == '-':
		default:
			return false
		}
	}
	return true
}
