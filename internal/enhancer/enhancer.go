// Package enhancer turns a short seed prompt into an embellished image
// generation prompt, either from local word pools or via an external
// text-completion service.
package enhancer

import (
	"context"
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// ErrEmptySeed is returned for a seed that is empty after trimming.
	ErrEmptySeed = errors.New("no prompt provided")

	// ErrUpstream wraps every failure of the external completion service.
	ErrUpstream = errors.New("enhancement service failed")
)

// Enhancer produces an enhanced prompt from a seed. Implementations never
// retain the seed and share no state between calls.
type Enhancer interface {
	Enhance(ctx context.Context, seed string) (string, error)
}

// NormalizeSeed trims the seed and upper-cases its first character.
func NormalizeSeed(seed string) (string, error) {
	s := strings.TrimSpace(seed)
	if s == "" {
		return "", ErrEmptySeed
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:], nil
}
