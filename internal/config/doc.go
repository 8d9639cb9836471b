// Package config provides configuration loading, merging, and validation
// facilities for the server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig]. The command-line tools load
// their smaller configs with [GetClientConfig] and [GetUserAddConfig], which
// read only environment variables and flags.
package config
