// Copyright 2026 The Autoannotate Authors
// SPDX-License-Identifier: MIT

// Package redact strips API keys from strings before they appear in
// output or error messages.
package redact

import (
	"os"
	"strings"
)

// sensitiveEnvVars lists environment variable names whose values must never
// appear in output. Matches the variables the provider clients read.
var sensitiveEnvVars = []string{
	"ANTHROPIC_API_KEY",
	"GEMINI_API_KEY",
	"OPENAI_API_KEY",
}

// String replaces any occurrence of a known API key value with "[REDACTED]".
// Values are read from the environment on every call because SetAPIKey can
// install new keys at any point during the process lifetime.
func String(s string) string {
	for _, envVar := range sensitiveEnvVars {
		val := os.Getenv(envVar)
		if val == "" || len(val) < 4 {
			continue
		}
		s = strings.ReplaceAll(s, val, "[REDACTED]")
	}
	return s
}
