// Package config loads the server and API client settings.
//
// Server settings ([StructuredConfig]) are merged in this order, each
// source overriding non-zero fields of the previous one:
//  0. Built-in defaults
//  1. Environment variables (APP_*, SERVER_*, STORAGE_*, CONFIG)
//  2. Command-line flags
//  3. JSON config file named by -c, -config or CONFIG
//
// The merged result is validated before use; the token signing key is
// required. Client settings ([ClientAdapter]) use CLIENT_* variables and
// their own flags. Entry points are [GetStructuredConfig] and
// [GetClientConfig].
package config
