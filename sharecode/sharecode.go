// Package sharecode packs a parameter set into a short URL-safe token.
//
// Tokens are gob encoded, masked with an LCG keystream and base64 encoded.
// The mask only keeps tokens opaque; it is not encryption.
package sharecode

import (
	"encoding/base64"
	"encoding/gob"
	"errors"
	"fmt"
	"strings"

	"github.com/tutils/lcgviz/lcg"
)

// Prefix marks a share token on the command line.
const Prefix = "@"

// ErrMalformed is returned for tokens that cannot be decoded.
var ErrMalformed = errors.New("malformed share token")

// DefaultKey seeds the mask keystream.
const DefaultKey uint64 = 33280939

var defaultCodec = NewCodec(DefaultKey)

// Encode returns the token for p using the default key.
func Encode(p lcg.Params) (string, error) {
	return defaultCodec.Encode(p)
}

// Decode parses a token produced by Encode. A leading Prefix is accepted.
func Decode(s string) (lcg.Params, error) {
	return defaultCodec.Decode(s)
}

// Codec encodes and decodes tokens for one key.
type Codec struct {
	key uint64
}

// NewCodec create a new Codec
func NewCodec(key uint64) *Codec {
	return &Codec{key: key}
}

func (c *Codec) Encode(p lcg.Params) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	w1 := &strings.Builder{}
	w2 := base64.NewEncoder(base64.RawURLEncoding, w1)
	w3 := newMaskWriter(w2, c.key)
	if err := gob.NewEncoder(w3).Encode(p); err != nil {
		return "", err
	}
	if err := w2.Close(); err != nil {
		return "", err
	}
	return w1.String(), nil
}

func (c *Codec) Decode(s string) (lcg.Params, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), Prefix)
	if s == "" {
		return lcg.Params{}, ErrMalformed
	}
	r1 := strings.NewReader(s)
	r2 := base64.NewDecoder(base64.RawURLEncoding, r1)
	r3 := newMaskReader(r2, c.key)
	var p lcg.Params
	if err := gob.NewDecoder(r3).Decode(&p); err != nil {
		return lcg.Params{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := p.Validate(); err != nil {
		return lcg.Params{}, err
	}
	return p, nil
}
