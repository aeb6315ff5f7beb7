// Package roomid generates the short codes players type to join a room.
package roomid

import (
	"crypto/rand"
	"strings"
)

// Codes are six characters from an alphabet with the easily-confused
// characters (0/O, 1/I/L) removed, so they survive being read aloud.
const (
	alphabet = "23456789ABCDEFGHJKMNPQRSTVWXYZ"
	length   = 6
)

// RandSource interface for dependency injection of randomness
type RandSource interface {
	Intn(n int) int
}

// Generator produces room codes with configurable randomness
type Generator struct {
	randSource RandSource
}

// NewGenerator creates a generator. A nil RandSource means crypto/rand.
func NewGenerator(randSource RandSource) *Generator {
	return &Generator{randSource: randSource}
}

// Generate returns a new room code
func Generate() string {
	return NewGenerator(nil).Generate()
}

// Generate returns a new room code using the generator's RandSource
func (g *Generator) Generate() string {
	var sb strings.Builder
	sb.Grow(length)

	if g.randSource != nil {
		for i := 0; i < length; i++ {
			sb.WriteByte(alphabet[g.randSource.Intn(len(alphabet))])
		}
		return sb.String()
	}

	buf := make([]byte, length)
	if _, err := rand.Read(buf); err != nil {
		panic("roomid: failed to read random bytes: " + err.Error())
	}
	for _, b := range buf {
		sb.WriteByte(alphabet[int(b)%len(alphabet)])
	}
	return sb.String()
}

// Normalize canonicalizes a user-typed code for lookup
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
