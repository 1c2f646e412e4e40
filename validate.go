package sitemeta

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/text/language"
)

// ValidationErrors collects every violation found by Check.
type ValidationErrors struct {
	errors []error
}

// Add records err when it is non-nil.
func (v *ValidationErrors) Add(err error) {
	if err != nil {
		v.errors = append(v.errors, err)
	}
}

// HasErrors reports whether any violation was recorded.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.errors) > 0
}

// Errors returns the recorded violations.
func (v *ValidationErrors) Errors() []error {
	return v.errors
}

func (v *ValidationErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("site metadata validation failed:\n")
	for _, err := range v.errors {
		sb.WriteString(" - ")
		sb.WriteString(err.Error())
		sb.WriteRune('\n')
	}
	return sb.String()
}

// Unwrap lets errors.Is and errors.As see individual violations.
func (v *ValidationErrors) Unwrap() []error {
	return v.errors
}

// urlFields are the fields that must hold an absolute URL or a relative path.
var urlFields = map[string]bool{
	"siteUrl":      true,
	"siteRepo":     true,
	"siteLogo":     true,
	"socialBanner": true,
	"mastodon":     true,
	"github":       true,
	"linkedin":     true,
	"instagram":    true,
}

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(SchemaJSON))
	})
	return schema, schemaErr
}

// Check verifies the properties consumers expect of a metadata record:
// every field set, a known theme, URL-shaped fields that parse as absolute
// URLs or relative paths, a bare email address, and BCP 47 language tags.
// It returns nil or a *ValidationErrors. Load and Default never call it.
func Check(meta SiteMetadata) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("sitemeta: compile schema: %w", err)
	}
	result, err := s.Validate(gojsonschema.NewGoLoader(meta))
	if err != nil {
		return fmt.Errorf("sitemeta: validate: %w", err)
	}

	v := &ValidationErrors{}
	for _, re := range result.Errors() {
		v.Add(fmt.Errorf("%s: %s", re.Field(), re.Description()))
	}

	for _, f := range meta.Fields() {
		if f.Value == "" {
			// Already reported by the schema.
			continue
		}
		switch {
		case urlFields[f.Name]:
			v.Add(checkURLOrPath(f.Name, f.Value))
		case f.Name == "email":
			v.Add(checkEmail(f.Value))
		case f.Name == "language", f.Name == "locale":
			if _, err := language.Parse(f.Value); err != nil {
				v.Add(fmt.Errorf("%s: %q is not a language tag: %w", f.Name, f.Value, err))
			}
		}
	}

	if v.HasErrors() {
		return v
	}
	return nil
}

func checkURLOrPath(field, raw string) error {
	if strings.ContainsAny(raw, " \t\r\n") {
		return fmt.Errorf("%s: %q contains whitespace", field, raw)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", field, err)
	}
	if u.IsAbs() {
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s: unsupported scheme %q", field, u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("%s: %q has no host", field, raw)
		}
		return nil
	}
	if u.Host != "" || u.Path == "" {
		return fmt.Errorf("%s: %q is neither an absolute URL nor a relative path", field, raw)
	}
	return nil
}

func checkEmail(raw string) error {
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		// Reported by the schema's email format.
		return nil
	}
	if addr.Address != raw || addr.Name != "" {
		return fmt.Errorf("email: %q must be a bare address", raw)
	}
	if at := strings.LastIndex(raw, "@"); !strings.Contains(raw[at+1:], ".") {
		return fmt.Errorf("email: %q has no domain suffix", raw)
	}
	return nil
}
