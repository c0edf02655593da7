package crypto

import (
	"time"

	"github.com/MKhiriev/habit-tracker/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher isolates the password-storage contract from the rest of the
// system. Hashes are self-describing bcrypt strings: the algorithm version,
// cost factor and salt travel inside the hash, so no separate salt storage is
// needed and raising the cost never breaks existing hashes.
type PasswordHasher interface {
	// Hash derives a new salted hash of password. Two calls with the same
	// password return different strings.
	// Returns ErrEncoding if password is not valid UTF-8 or is longer than
	// bcrypt can process.
	Hash(password string) (string, error)

	// Verify reports whether password matches storedHash using bcrypt's
	// constant-time comparison. The cost is read from storedHash.
	// A wrong password yields (false, nil); a hash that cannot be parsed
	// yields ErrInvalidHashFormat.
	Verify(password, storedHash string) (bool, error)
}

// TokenAuthority issues and verifies signed, time-limited bearer tokens.
// It is stateless: tokens are never stored and the only shared state is the
// immutable signing secret.
type TokenAuthority interface {
	// Issue signs a claim set containing sub = subjectID, user_id = subjectID,
	// a random jti, iat = now and exp = now + lifetime, merged with extra. Reserved claim
	// names in extra are ignored. A non-positive lifetime selects the
	// configured default.
	Issue(subjectID string, extra map[string]string, lifetime time.Duration) (models.Token, error)

	// Verify decodes tokenString and returns its claim set.
	// Failures are reported as ErrTokenMalformed, ErrSignatureInvalid,
	// ErrTokenExpired or ErrMissingClaim.
	Verify(tokenString string) (models.ClaimSet, error)
}
