package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// Author identifies the project maintainer.
type Author struct {
	Name  string
	Email string
}

// Project holds the metadata used for token substitution and banners.
type Project struct {
	Title       string
	Description string
	Version     string
	Author      Author
	License     string
	Homepage    string
}

// ReplacePattern maps a token (without prefix) to its replacement value.
type ReplacePattern struct {
	Match       string
	Replacement string
}

// Tokens returns the substitution patterns in a fixed order.
// Every referenced field must be set.
func (p Project) Tokens() ([]ReplacePattern, error) {
	patterns := []ReplacePattern{
		{Match: "title", Replacement: p.Title},
		{Match: "description", Replacement: p.Description},
		{Match: "version", Replacement: p.Version},
		{Match: "author_name", Replacement: p.Author.Name},
		{Match: "author_email", Replacement: p.Author.Email},
		{Match: "license", Replacement: p.License},
	}
	for _, pat := range patterns {
		if pat.Replacement == "" {
			return nil, zerr.With(ErrMetadataFieldMissing, "field", pat.Match)
		}
	}
	return patterns, nil
}

// Banner renders the header comment prepended to minified output.
func (p Project) Banner() (string, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"title", p.Title},
		{"version", p.Version},
		{"homepage", p.Homepage},
		{"license", p.License},
	}
	for _, f := range fields {
		if f.value == "" {
			return "", zerr.With(ErrMetadataFieldMissing, "field", f.name)
		}
	}
	return fmt.Sprintf("/* %s v.%s %s | License: %s */", p.Title, p.Version, p.Homepage, p.License), nil
}
