package config

// Provider supplies API keys and model overrides for LLM providers.
//
// The default implementation is EnvProvider, which reads the process
// environment. Alternative sources (config files, secret managers) can
// satisfy the same interface and be swapped in at call sites.
type Provider interface {
	// GetKey returns the API key for the named provider. When required is
	// true, a missing or empty key is an error; otherwise the empty string
	// is returned without error.
	GetKey(provider string, required bool) (string, error)

	// GetAllKeys returns the current key value for every canonical
	// provider, empty when unset. Never fails.
	GetAllKeys() map[string]string

	// Validate fails when the named provider has no key configured.
	Validate(provider string) error

	// GetModelName returns the configured model override for the named
	// provider, empty when unset or when the provider is unrecognized.
	GetModelName(provider string) string
}
