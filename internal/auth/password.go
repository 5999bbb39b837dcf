// internal/auth/password.go
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

type PasswordConfig struct {
	Time    uint32
	Memory  uint32
	Threads uint8
	KeyLen  uint32
}

var DefaultPasswordConfig = PasswordConfig{
	Time:    1,
	Memory:  64 * 1024,
	Threads: 4,
	KeyLen:  32,
}

type PasswordHasher struct {
	config PasswordConfig
}

func NewPasswordHasher() *PasswordHasher {
	return NewPasswordHasherWithConfig(DefaultPasswordConfig)
}

// NewPasswordHasherWithConfig is mostly useful for cheap hashes in tests.
func NewPasswordHasherWithConfig(cfg PasswordConfig) *PasswordHasher {
	return &PasswordHasher{config: cfg}
}

// Hash encodes as $argon2id$v=19$m=<mem>,t=<time>,p=<threads>$salt$hash
func (p *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	c := p.config
	key := argon2.IDKey([]byte(password), salt, c.Time, c.Memory, c.Threads, c.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, c.Memory, c.Time, c.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (p *PasswordHasher) Verify(password, encodedHash string) (bool, error) {
	cfg, salt, key, err := decodeHash(encodedHash)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, cfg.Time, cfg.Memory, cfg.Threads, cfg.KeyLen)
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

// NeedsRehash reports whether the stored hash was made with other parameters.
func (p *PasswordHasher) NeedsRehash(encodedHash string) bool {
	cfg, _, _, err := decodeHash(encodedHash)
	return err != nil || cfg != p.config
}

func decodeHash(encodedHash string) (PasswordConfig, []byte, []byte, error) {
	var cfg PasswordConfig

	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return cfg, nil, nil, fmt.Errorf("invalid hash format")
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &cfg.Memory, &cfg.Time, &cfg.Threads); err != nil {
		return cfg, nil, nil, fmt.Errorf("invalid hash parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("invalid salt: %w", err)
	}

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return cfg, nil, nil, fmt.Errorf("invalid hash: %w", err)
	}
	cfg.KeyLen = uint32(len(key))

	return cfg, salt, key, nil
}
