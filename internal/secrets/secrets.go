// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets resolves credentials such as the model API key. Values come
// from environment variables first, then from a directory of plain-text files
// where each file name is the secret name and its trimmed contents the value.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// AnthropicAPIKey is the file name holding the model API key.
const AnthropicAPIKey = "anthropic-api-key"

// Secrets maps secret names to values.
type Secrets map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty set. Files that cannot be read are reported to warn and
// skipped.
func Load(dir string, warn io.Writer) (Secrets, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := Secrets{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(warn, "warning: could not read secret %s: %v\n", name, err)
			continue
		}
		if value := strings.TrimSpace(string(data)); value != "" {
			s[name] = value
		}
	}
	return s, nil
}

// Resolve returns the first non-empty value among the named environment
// variables, falling back to the secret called name.
func (s Secrets) Resolve(name string, envVars ...string) string {
	for _, env := range envVars {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}
	return s[name]
}

// Names returns the secret names without their values.
func (s Secrets) Names() []string {
	names := make([]string, 0, len(s))
	for k := range s {
		names = append(names, k)
	}
	return names
}
