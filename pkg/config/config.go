package config

import (
	"maps"
	"os"
	"slices"
	"strings"
)

// EnvPrefix namespaces every environment variable this package reads, so
// the template does not collide with other tools on the same machine.
const EnvPrefix = "EADLANGCHAIN_"

// providerKeyVars maps canonical provider names to the environment
// variables holding their API keys.
var providerKeyVars = map[string]string{
	"openai":    EnvPrefix + "AI_OPENAI_API_KEY",
	"anthropic": EnvPrefix + "AI_ANTHROPIC_API_KEY",
	"gemini":    EnvPrefix + "AI_GEMINI_API_KEY",
}

// providerModelVars maps canonical provider names to the environment
// variables holding their optional model overrides.
var providerModelVars = map[string]string{
	"openai":    EnvPrefix + "AI_OPENAI_MODEL",
	"anthropic": EnvPrefix + "AI_ANTHROPIC_MODEL",
	"gemini":    EnvPrefix + "AI_GEMINI_MODEL",
}

// providerAliases maps accepted alternative spellings to canonical names.
// Aliases are accepted as input but never surfaced by GetAllKeys.
var providerAliases = map[string]string{
	"google": "gemini",
}

// canonical lower-cases the provider name, resolves aliases, and reports
// whether the result is a recognized provider.
func canonical(provider string) (string, bool) {
	p := strings.ToLower(provider)
	if target, ok := providerAliases[p]; ok {
		p = target
	}
	_, ok := providerKeyVars[p]
	return p, ok
}

// SupportedProviders returns the canonical provider names, sorted
// alphabetically. Aliases are not included.
func SupportedProviders() []string {
	return slices.Sorted(maps.Keys(providerKeyVars))
}

// EnvProvider reads provider configuration from the process environment.
// Values are read live on every call, so changes to the environment are
// observed immediately.
type EnvProvider struct{}

var _ Provider = (*EnvProvider)(nil)

// GetKey returns the API key for the named provider. Provider matching is
// case-insensitive and accepts aliases ("google" for "gemini"). When
// required is true, a missing or empty key yields a
// MissingConfigurationError naming the exact environment variable to set.
func (EnvProvider) GetKey(provider string, required bool) (string, error) {
	name, ok := canonical(provider)
	if !ok {
		return "", &InvalidProviderError{Provider: strings.ToLower(provider)}
	}

	envVar := providerKeyVars[name]
	value := os.Getenv(envVar)
	if value == "" && required {
		return "", &MissingConfigurationError{Provider: name, EnvVar: envVar}
	}
	return value, nil
}

// GetAllKeys returns the current key value for every canonical provider.
// Unset keys map to the empty string; the result always has one entry per
// canonical provider regardless of configuration state.
func (EnvProvider) GetAllKeys() map[string]string {
	keys := make(map[string]string, len(providerKeyVars))
	for name, envVar := range providerKeyVars {
		keys[name] = os.Getenv(envVar)
	}
	return keys
}

// Validate fails with the same errors as GetKey when the named provider
// has no key configured. Useful for failing fast before the key is needed.
func (p EnvProvider) Validate(provider string) error {
	_, err := p.GetKey(provider, true)
	return err
}

// GetModelName returns the model override configured for the named
// provider. Unlike GetKey, an unrecognized provider is not an error: the
// override is optional and a typo here should not be fatal.
func (EnvProvider) GetModelName(provider string) string {
	name, ok := canonical(provider)
	if !ok {
		return ""
	}
	return os.Getenv(providerModelVars[name])
}

// defaultProvider backs the package-level convenience functions.
var defaultProvider EnvProvider

// GetAPIKey returns the API key for the named provider using the default
// EnvProvider. See Provider.GetKey.
func GetAPIKey(provider string, required bool) (string, error) {
	return defaultProvider.GetKey(provider, required)
}

// GetAllAPIKeys returns every canonical provider's current key value using
// the default EnvProvider. See Provider.GetAllKeys.
func GetAllAPIKeys() map[string]string {
	return defaultProvider.GetAllKeys()
}

// ValidateProvider fails when the named provider has no key configured,
// using the default EnvProvider. See Provider.Validate.
func ValidateProvider(provider string) error {
	return defaultProvider.Validate(provider)
}

// GetModelName returns the model override for the named provider using the
// default EnvProvider. See Provider.GetModelName.
func GetModelName(provider string) string {
	return defaultProvider.GetModelName(provider)
}
