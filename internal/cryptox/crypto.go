// Package cryptox hashes and verifies account passwords with argon2id.
//
// Encoded hashes carry their own parameters so that tuning DefaultParams
// never invalidates stored records:
//
//	argon2id$v=19$m=65536,t=1,p=4$<salt b64>$<key b64>
package cryptox

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/jobhunt/internal/common"
	"golang.org/x/crypto/argon2"
)

const scheme = "argon2id"

// Params are the argon2id cost settings.
type Params struct {
	Memory  uint32
	Time    uint32
	Threads uint8
	KeyLen  uint32
	SaltLen int
}

// DefaultParams is used by HashPassword.
var DefaultParams = Params{Memory: 64 * 1024, Time: 1, Threads: 4, KeyLen: 32, SaltLen: 16}

var b64 = base64.RawStdEncoding

// DeriveKey stretches password with salt using p.
func DeriveKey(password, salt []byte, p Params) []byte {
	return argon2.IDKey(password, salt, p.Time, p.Memory, p.Threads, p.KeyLen)
}

// HashPassword returns an encoded salted hash of password.
func HashPassword(password []byte) string {
	p := DefaultParams
	salt := common.GenerateRandByteArray(p.SaltLen)
	key := DeriveKey(password, salt, p)
	defer common.WipeByteArray(key)

	return fmt.Sprintf("%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		scheme, argon2.Version, p.Memory, p.Time, p.Threads, b64.EncodeToString(salt), b64.EncodeToString(key))
}

// VerifyPassword reports whether password matches the encoded hash.
// Malformed encodings never match.
func VerifyPassword(encoded string, password []byte) bool {
	p, salt, want, err := decode(encoded)
	if err != nil {
		return false
	}
	got := DeriveKey(password, salt, p)
	defer common.WipeByteArray(got)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// EqualPlaintext compares two secrets in constant time.
func EqualPlaintext(stored string, password []byte) bool {
	return subtle.ConstantTimeCompare([]byte(stored), password) == 1
}

// MaxMemory caps the argon2 memory cost (KiB) accepted from a stored hash.
const MaxMemory = 256 * 1024

// check rejects costs argon2.IDKey would panic on or that are unreasonably
// large for a stored record.
func (p Params) check() error {
	switch {
	case p.Time < 1:
		return fmt.Errorf("bad params: t=%d", p.Time)
	case p.Threads < 1:
		return fmt.Errorf("bad params: p=%d", p.Threads)
	case p.Memory < 8*uint32(p.Threads), p.Memory > MaxMemory:
		return fmt.Errorf("bad params: m=%d", p.Memory)
	}
	return nil
}

func decode(encoded string) (Params, []byte, []byte, error) {
	var p Params
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != scheme {
		return p, nil, nil, fmt.Errorf("not an %s hash", scheme)
	}

	var version int
	if _, err := fmt.Sscanf(parts[1], "v=%d", &version); err != nil || version != argon2.Version {
		return p, nil, nil, fmt.Errorf("unsupported version %q", parts[1])
	}
	if _, err := fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &p.Memory, &p.Time, &p.Threads); err != nil {
		return p, nil, nil, fmt.Errorf("bad params: %w", err)
	}
	if err := p.check(); err != nil {
		return p, nil, nil, err
	}

	salt, err := b64.DecodeString(parts[3])
	if err != nil {
		return p, nil, nil, fmt.Errorf("bad salt: %w", err)
	}
	key, err := b64.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("bad key: %w", err)
	}
	if len(key) == 0 {
		return p, nil, nil, fmt.Errorf("empty key")
	}
	p.SaltLen = len(salt)
	p.KeyLen = uint32(len(key))
	return p, salt, key, nil
}
