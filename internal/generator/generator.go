// Package generator builds random passwords from selectable character classes.
//
// Passwords are drawn from math/rand/v2, a fast non-cryptographic source.
// They are fine for everyday accounts but are not suitable for high-security
// secrets such as key material or long-lived service credentials.
package generator

import (
	"errors"
	"math/rand/v2"
)

const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// EmptySelectionMessage is the guidance shown to users in place of a
// password when no character class is enabled.
const EmptySelectionMessage = "Please select at least one character type"

// ErrNoCharacterTypes is returned when every character class is disabled.
var ErrNoCharacterTypes = errors.New("at least one character type must be selected")

// Options configures a single generation call.
type Options struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// DefaultOptions returns 12 characters with all classes enabled.
func DefaultOptions() Options {
	return Options{
		Length:    12,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Alphabet returns the working alphabet for opts: the enabled classes
// concatenated in the order upper, lower, digits, symbols.
func Alphabet(opts Options) string {
	var pool string
	if opts.Uppercase {
		pool += UppercaseChars
	}
	if opts.Lowercase {
		pool += LowercaseChars
	}
	if opts.Numbers {
		pool += NumberChars
	}
	if opts.Symbols {
		pool += SymbolChars
	}
	return pool
}

// Generator draws passwords from its own random source.
// A nil source means the global math/rand/v2 generator.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator backed by rng. Pass nil to use the global source.
// A non-nil *rand.Rand is not safe for concurrent use.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Generate creates a password using the global random source.
func Generate(opts Options) (string, error) {
	return New(nil).Generate(opts)
}

// Generate creates a password of opts.Length characters, each sampled
// independently and uniformly from the working alphabet.
//
// An empty selection always yields ErrNoCharacterTypes. A non-positive
// length yields an empty string and no error.
func (g *Generator) Generate(opts Options) (string, error) {
	pool := Alphabet(opts)
	if pool == "" {
		return "", ErrNoCharacterTypes
	}
	if opts.Length <= 0 {
		return "", nil
	}

	result := make([]byte, opts.Length)
	for i := range result {
		result[i] = pool[g.intN(len(pool))]
	}

	return string(result), nil
}

func (g *Generator) intN(n int) int {
	if g.rng == nil {
		return rand.IntN(n)
	}
	return g.rng.IntN(n)
}
