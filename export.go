package sitemeta

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the serialization produced by Export.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatJS   Format = "js"
)

// ErrUnknownFormat is returned for export formats other than json, yaml and js.
var ErrUnknownFormat = errors.New("sitemeta: unknown export format")

// ParseFormat maps a user-supplied name (case-insensitive, "yml" allowed) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "js", "javascript":
		return FormatJS, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// ContentType returns the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	case FormatJS:
		return "text/javascript; charset=utf-8"
	default:
		return "application/json; charset=utf-8"
	}
}

// Export writes meta to w in the given format. The output depends only on
// meta, so exporting the same record twice gives identical bytes.
func Export(w io.Writer, meta SiteMetadata, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("sitemeta: encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(meta); err != nil {
			return fmt.Errorf("sitemeta: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatJS:
		return writeJSModule(w, meta)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(format))
}

// writeJSModule emits the CommonJS module imported by the Pliny-based site.
func writeJSModule(w io.Writer, meta SiteMetadata) error {
	bw := bufio.NewWriter(w)
	bw.WriteString("/** @type {import(\"pliny/config\").PlinyConfig } */\n")
	bw.WriteString("const siteMetadata = {\n")
	for _, f := range meta.Fields() {
		bw.WriteString("  " + f.Name + ": " + jsString(f.Value) + ",")
		if f.Name == "theme" {
			bw.WriteString(" // system, dark or light")
		}
		bw.WriteByte('\n')
	}
	bw.WriteString("}\n\nmodule.exports = siteMetadata\n")
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sitemeta: write js module: %w", err)
	}
	return nil
}

// jsString quotes s as a single-quoted JavaScript string literal, switching
// to double quotes when s contains an apostrophe and no double quote.
func jsString(s string) string {
	quote := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}
	var b strings.Builder
	b.WriteByte(quote)
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte(quote)
	return b.String()
}
