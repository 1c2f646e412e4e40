package sitemeta

import _ "embed"

// SchemaJSON is the JSON Schema describing the exported metadata document.
//
//go:embed schema/sitemetadata.schema.json
var SchemaJSON []byte
