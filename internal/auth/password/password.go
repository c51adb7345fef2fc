package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/argon2"
)

const (
	hashTime    uint32 = 1
	hashMemory  uint32 = 64 * 1024
	hashThreads uint8  = 4
	hashKeyLen  uint32 = 32
	hashSaltLen        = 16
)

// Hash returns the Argon2id encoding of password.
func Hash(password string) (string, error) {
	salt := make([]byte, hashSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(password), salt, hashTime, hashMemory, hashThreads, hashKeyLen)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		hashMemory, hashTime, hashThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify checks whether password matches the encoded Argon2id hash.
func Verify(password, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return false
	}

	memory, timeCost, threads, ok := parseParams(parts[3])
	if !ok {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false
	}

	check := argon2.IDKey([]byte(password), salt, timeCost, memory, threads, uint32(len(hash)))
	return subtle.ConstantTimeCompare(hash, check) == 1
}

func parseParams(raw string) (memory, timeCost uint32, threads uint8, ok bool) {
	params := strings.Split(raw, ",")
	if len(params) != 3 {
		return 0, 0, 0, false
	}

	m, mOK := strings.CutPrefix(params[0], "m=")
	t, tOK := strings.CutPrefix(params[1], "t=")
	p, pOK := strings.CutPrefix(params[2], "p=")
	if !mOK || !tOK || !pOK {
		return 0, 0, 0, false
	}

	m64, err := strconv.ParseUint(m, 10, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	t64, err := strconv.ParseUint(t, 10, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	p64, err := strconv.ParseUint(p, 10, 8)
	if err != nil {
		return 0, 0, 0, false
	}

	return uint32(m64), uint32(t64), uint8(p64), true
}
