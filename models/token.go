package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim names carried by every access token.
const (
	ClaimSubject   = "sub"
	ClaimUserID    = "user_id"
	ClaimExpiresAt = "exp"
	ClaimIssuedAt  = "iat"
	ClaimTokenID   = "jti"
)

// ClaimSet is the decoded payload of an access token: a flat mapping of
// claim name to value. It is immutable once signed and never stored
// server-side.
type ClaimSet jwt.MapClaims

// Subject returns the "sub" claim, or an empty string when it is absent or
// not a string.
func (c ClaimSet) Subject() string {
	return c.String(ClaimSubject)
}

// UserID returns the "user_id" claim, or an empty string when it is absent.
func (c ClaimSet) UserID() string {
	return c.String(ClaimUserID)
}

// String returns the string value of the named claim.
func (c ClaimSet) String(name string) string {
	v, ok := c[name].(string)
	if !ok {
		return ""
	}
	return v
}

// TokenID returns the "jti" claim.
func (c ClaimSet) TokenID() string {
	return c.String(ClaimTokenID)
}

// ExpiresAt returns the "exp" claim as a UTC time. The zero time is returned
// when the claim is missing or cannot be parsed.
func (c ClaimSet) ExpiresAt() time.Time {
	exp, err := jwt.MapClaims(c).GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.UTC()
}

// Token is a freshly issued access token.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers or
// response bodies.
type Token struct {
	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Claims is the claim set that was signed.
	Claims ClaimSet `json:"-"`

	// ExpiresAt is the UTC expiration instant encoded in the "exp" claim.
	ExpiresAt time.Time `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
