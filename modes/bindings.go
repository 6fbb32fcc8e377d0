package modes

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/cubesnake/heading"
)

// DefaultAbsoluteBindings maps player 1's absolute-scheme keys to cube axes
const DefaultAbsoluteBindings = "w=ahead,s=back,a=left,d=right,q=up,e=down"

// ErrBadBinding rejects malformed CUBESNAKE_KEYS entries
var ErrBadBinding = errors.New("modes: bad key binding")

// Keys with a fixed meaning that a binding may not take over
const reservedKeys = "pnijklPN"

// ParseKeyBindings reads "key=heading" pairs separated by commas
// Heading names are case-insensitive; Nowhere and reserved keys are rejected
func ParseKeyBindings(s string) (map[rune]heading.Heading, error) {
	out := make(map[rune]heading.Heading)
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, name, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || utf8.RuneCountInString(key) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrBadBinding, pair)
		}
		r, _ := utf8.DecodeRuneInString(key)
		if strings.ContainsRune(reservedKeys, r) {
			return nil, fmt.Errorf("%w: %q is reserved", ErrBadBinding, key)
		}
		h, err := heading.Parse(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadBinding, err)
		}
		if h == heading.Nowhere {
			return nil, fmt.Errorf("%w: %q binds nowhere", ErrBadBinding, key)
		}
		out[r] = h
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: no bindings in %q", ErrBadBinding, s)
	}
	return out, nil
}

// DefaultAbsoluteKeys returns a fresh copy of the default bindings
func DefaultAbsoluteKeys() map[rune]heading.Heading {
	keys, err := ParseKeyBindings(DefaultAbsoluteBindings)
	if err != nil {
		panic(err)
	}
	return keys
}

// LoadKeyBindings reads CUBESNAKE_KEYS, falling back to the defaults when unset
func LoadKeyBindings() (map[rune]heading.Heading, error) {
	s := os.Getenv("CUBESNAKE_KEYS")
	if s == "" {
		return DefaultAbsoluteKeys(), nil
	}
	keys, err := ParseKeyBindings(s)
	if err != nil {
		return DefaultAbsoluteKeys(), err
	}
	return keys, nil
}
