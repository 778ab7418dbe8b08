// Package guid generates 128-bit globally unique identifiers and renders them
// in the canonical 8-4-4-4-12 upper-case hexadecimal form:
//
//	XXXXXXXX-XXXX-XXXX-XXXX-XXXXXXXXXXXX
//
// Generation is backed by github.com/google/uuid (random, version 4).
// A GUID is a plain 16-byte value, so there is nothing to release.
package guid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	// Length is the number of characters in the formatted form.
	Length = 36

	// FormatSize is the exact buffer size Format requires: Length characters
	// plus a terminating zero byte.
	FormatSize = Length + 1
)

// Sentinel errors for GUID operations.
var (
	// ErrBufferSize indicates Format was given a buffer whose length is not FormatSize.
	ErrBufferSize = errors.New("guid: buffer size must equal FormatSize")

	// ErrGenerate indicates the random source failed.
	ErrGenerate = errors.New("guid: generation failed")

	// ErrParse indicates Parse could not read a GUID.
	ErrParse = errors.New("guid: invalid format")
)

// GUID is a 128-bit identifier.
type GUID [16]byte

// Nil is the all-zero GUID.
var Nil GUID

// Generate returns a new random GUID.
func Generate() (GUID, error) {
	u, err := uuid.NewRandom()
	if err != nil {
		return Nil, fmt.Errorf("%w: %w", ErrGenerate, err)
	}

	return GUID(u), nil
}

// MustGenerate is Generate that panics on failure. Intended for tests and
// program initialization.
func MustGenerate() GUID {
	g, err := Generate()
	if err != nil {
		panic(err)
	}

	return g
}

// Parse reads a GUID in 8-4-4-4-12 form, any hex case, optionally wrapped
// in braces or prefixed with "urn:uuid:".
func Parse(s string) (GUID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return Nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	return GUID(u), nil
}

// String renders g as 36 upper-case characters grouped 8-4-4-4-12.
func (g GUID) String() string {
	return strings.ToUpper(uuid.UUID(g).String())
}

// Format writes the canonical form of g into dst followed by a zero byte.
// len(dst) must equal FormatSize; otherwise dst is left untouched and
// ErrBufferSize is returned.
func (g GUID) Format(dst []byte) error {
	if len(dst) != FormatSize {
		return fmt.Errorf("%w: got %d, want %d", ErrBufferSize, len(dst), FormatSize)
	}
	copy(dst, g.String())
	dst[Length] = 0

	return nil
}

// IsNil reports whether g is the all-zero GUID.
func (g GUID) IsNil() bool {
	return g == Nil
}
