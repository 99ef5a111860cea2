package config

import (
	"fmt"
	"strings"
)

// InvalidProviderError reports a provider name outside the supported set.
// This is a programmer error: retrying cannot fix it.
type InvalidProviderError struct {
	Provider string
}

func (e *InvalidProviderError) Error() string {
	return fmt.Sprintf("unknown provider: %q (supported providers: %s)",
		e.Provider, strings.Join(SupportedProviders(), ", "))
}

// MissingConfigurationError reports a required API key absent from the
// environment. This is an operator error: the message names the exact
// variable to set and where to find the template.
type MissingConfigurationError struct {
	Provider string
	EnvVar   string
}

func (e *MissingConfigurationError) Error() string {
	return fmt.Sprintf("API key not found for provider %q: set %s in your .env file or environment (see .env.example for a template)",
		e.Provider, e.EnvVar)
}
