package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

const sampleDocument = `{
	"personalInfo": {
		"fullName": "Ada Lovelace",
		"jobTitle": "Engineer",
		"email": "ada@example.com",
		"website": "ada.dev",
		"linkedin": "in/ada",
		"summary": "Builds analytical engines."
	},
	"sections": [
		{"id": "summary", "type": "personal", "title": "Profile"},
		{"id": "skills", "type": "skills", "items": [
			{"title": "Go", "subtitle": "Languages"},
			{"title": "Kubernetes"}
		]},
		{"id": "exp", "type": "experience", "items": [
			{"title": "Engineer", "subtitle": "Analytical Co", "date": "1843", "description": "• Wrote notes\n• Published program"}
		]}
	]
}`

// writeFile writes content to name inside a fresh temp dir and returns the path.
func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}
