package auth

import "golang.org/x/crypto/bcrypt"

// bcrypt ignores input beyond 72 bytes; longer passwords are truncated on a
// UTF-8 rune boundary so hashing and verification agree on the same prefix.
const bcryptMaxBytes = 72

func truncatePassword(password string) []byte {
	b := []byte(password)
	if len(b) <= bcryptMaxBytes {
		return b
	}
	b = b[:bcryptMaxBytes]
	for len(b) > 0 && b[len(b)-1]&0b1100_0000 == 0b1000_0000 {
		b = b[:len(b)-1]
	}
	return b
}

// HashPassword derives a bcrypt hash for the given password.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword(truncatePassword(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// VerifyPassword reports whether password resolves to hash. The comparison
// inside bcrypt is constant-time.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), truncatePassword(password)) == nil
}
