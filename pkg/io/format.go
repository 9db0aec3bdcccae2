package io

import (
	"path/filepath"
	"strings"

	"github.com/c4dsl/c4dsl/pkg/errors"
)

// Format is a workspace file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

var extToFormat = map[string]Format{
	".json": FormatJSON,
	".toml": FormatTOML,
	".yaml": FormatYAML,
	".yml":  FormatYAML,
}

// ParseFormat parses a format name, ignoring case. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	if f, ok := extToFormat["."+strings.ToLower(strings.TrimSpace(s))]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown workspace format: %q (use json, toml or yaml)", s)
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if f, ok := extToFormat[ext]; ok {
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "cannot infer workspace format from %q", filepath.Base(path))
}
