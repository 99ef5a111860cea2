// Package config provides namespaced environment-based configuration for
// LLM provider credentials.
//
// Loads from a .env file (godotenv, discovered by walking up from the
// working directory) and maps provider names to EADLANGCHAIN_-prefixed
// environment variables. Shell-set variables always take precedence over
// file values.
package config
