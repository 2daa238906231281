package celltype

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/jnhutchinson/autoannotatecelltype/llm"
)

// SetAPIKey stores an API key for the given service in the process
// environment, where the matching provider client will find it. The key
// lives only for the lifetime of the process and overwrites any prior
// value for that service; no other service's variable is touched.
//
// Emptiness is checked against the trimmed key, but the raw value is
// stored verbatim, surrounding whitespace included.
//
// The key is not validated beyond non-emptiness; a malformed key fails
// later, at query time.
func SetAPIKey(service llm.Service, apiKey string) error {
	if !service.Valid() {
		return &DomainError{Param: "service", Value: string(service), Allowed: serviceNames()}
	}
	if strings.TrimSpace(apiKey) == "" {
		return &ValidationError{Param: "api_key", Reason: "must not be empty"}
	}

	envVar := service.EnvVar()
	if err := os.Setenv(envVar, apiKey); err != nil {
		return fmt.Errorf("setting %s: %w", envVar, err)
	}

	slog.Info("api key configured", "service", service, "env", envVar)
	return nil
}
