// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads credentials from a directory of plain-text files.
// Each file holds one secret: the filename is the key name and the
// trimmed contents are the value.
//
// Recognized key files: gemini-api-key, ncbi-api-key, ncbi-email.
package secrets

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/pubmed-rag/pkg/types"
)

// DefaultDir is the secrets directory relative to the working directory.
const DefaultDir = ".secrets"

// Key file names.
const (
	GeminiAPIKey = "gemini-api-key"
	NCBIAPIKey   = "ncbi-api-key"
	NCBIEmail    = "ncbi-email"
)

// Secrets maps key file names to their values.
type Secrets map[string]string

// Load reads every regular, non-hidden file in dir. A missing directory
// yields an empty set. Unreadable files are reported to warn and skipped;
// a nil warn discards the warnings.
func Load(dir string, warn io.Writer) (Secrets, error) {
	if warn == nil {
		warn = io.Discard
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return Secrets{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	s := make(Secrets)
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

// Lookup returns the value for name and whether it was present.
func (s Secrets) Lookup(name string) (string, bool) {
	v, ok := s[name]
	return v, ok
}

// Apply fills credentials in cfg that are still empty. Values already set
// from the environment or config file take precedence.
func (s Secrets) Apply(cfg *types.Config) {
	fill := func(dst *string, name string) {
		if *dst != "" {
			return
		}
		if v, ok := s.Lookup(name); ok {
			*dst = v
		}
	}
	fill(&cfg.AI.APIKey, GeminiAPIKey)
	fill(&cfg.PubMed.APIKey, NCBIAPIKey)
	fill(&cfg.PubMed.Email, NCBIEmail)
}
