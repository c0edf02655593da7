// Package crypto implements the credential verifier and the token authority
// used by the authentication service.
//
// Both components are constructed once at startup from [config.App] and are
// safe for concurrent use: they hold no mutable state.
package crypto
