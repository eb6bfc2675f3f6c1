// Package schemas holds the JSON Schema files shipped with the binary.
package schemas

import _ "embed"

// ResumeDocument is the JSON Schema for a ResumeDocument.
//
//go:embed resume_document.schema.json
var ResumeDocument string
