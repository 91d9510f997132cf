// Package password generates random passwords from a cryptographically
// secure source.
package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Character classes. Every generated password of length four or more holds
// at least one character from each.
const (
	Uppercase   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase   = "abcdefghijklmnopqrstuvwxyz"
	Digits      = "0123456789"
	Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	// All is the union the remaining positions are drawn from
	All = Uppercase + Lowercase + Digits + Punctuation
)

// Length bounds enforced by the HTTP layer
const (
	MinLength     = 8
	MaxLength     = 128
	DefaultLength = 12
)

// ErrNegativeLength is returned for lengths below zero.
var ErrNegativeLength = errors.New("password length must not be negative")

var classes = [...]string{Uppercase, Lowercase, Digits, Punctuation}

// Generator draws passwords from a random source
type Generator struct {
	random io.Reader
}

// New returns a Generator backed by crypto/rand
func New() *Generator {
	return &Generator{random: rand.Reader}
}

// NewWithReader returns a Generator reading randomness from r. r must be a
// cryptographically secure source outside of tests.
func NewWithReader(r io.Reader) *Generator {
	return &Generator{random: r}
}

// Generate returns a password of exactly length characters. One character
// is drawn from each class, the rest from the union, and the result is
// shuffled. Lengths below four keep only the first length class draws.
func (g *Generator) Generate(length int) (string, error) {
	if length < 0 {
		return "", ErrNegativeLength
	}

	chars := make([]byte, 0, max(length, len(classes)))
	for _, class := range classes {
		c, err := g.pick(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	if length < len(chars) {
		chars = chars[:length]
	}

	for len(chars) < length {
		c, err := g.pick(All)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	if err := g.shuffle(chars); err != nil {
		return "", err
	}
	return string(chars), nil
}

func (g *Generator) pick(set string) (byte, error) {
	i, err := g.intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[i], nil
}

// shuffle is a Fisher-Yates shuffle driven by the generator's source.
func (g *Generator) shuffle(chars []byte) error {
	for i := len(chars) - 1; i > 0; i-- {
		j, err := g.intn(i + 1)
		if err != nil {
			return err
		}
		chars[i], chars[j] = chars[j], chars[i]
	}
	return nil
}

func (g *Generator) intn(n int) (int, error) {
	v, err := rand.Int(g.random, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}
