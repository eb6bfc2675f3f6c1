package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name"],
	"properties": {
		"name": {"type": "string"},
		"count": {"type": "integer", "minimum": 0}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON_ValidJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "ok", "count": 2}`)

	assert.NoError(t, ValidateJSON(schemaPath, jsonPath))
}

func TestValidateJSON_InvalidJSON_MissingField(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"count": 2}`)

	err := ValidateJSON(schemaPath, jsonPath)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok, "error should be ValidationError type")
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", testSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"name": "ok"}`)

	err := ValidateJSON(filepath.Join(dir, "missing.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_WrongType(t *testing.T) {
	err := ValidateJSONString(testSchema, `{"name": "ok", "count": "two"}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "count", validationErr.Errors[0].Field)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestValidateJSONString_BrokenSchema(t *testing.T) {
	err := ValidateJSONString(`{"type": "nonsense"}`, `{}`)
	require.Error(t, err)

	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "error should be SchemaLoadError type")
}

func TestValidateDocumentJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "empty object", input: `{}`},
		{name: "unknown section type", input: `{"sections":[{"id":"h","type":"hobbies","items":[{"title":"Chess"}]}]}`},
		{name: "null items", input: `{"sections":[{"id":"e","type":"education","items":null}]}`},
		{name: "png picture", input: `{"personalInfo":{"profilePicture":"data:image/png;base64,iVBORw0KGgo="}}`},
		{name: "section without id", input: `{"sections":[{"type":"skills"}]}`, wantErr: true},
		{name: "numeric title", input: `{"sections":[{"id":"s","type":"skills","items":[{"title":5}]}]}`, wantErr: true},
		{name: "gif picture", input: `{"personalInfo":{"profilePicture":"data:image/gif;base64,R0lG"}}`, wantErr: true},
		{name: "not json", input: `{ nope`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocumentJSON([]byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				_, ok := err.(*ValidationError)
				assert.True(t, ok, "error should be ValidationError type, got %T", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateDocument_Decoded(t *testing.T) {
	doc := &types.ResumeDocument{
		PersonalInfo: types.PersonalInfo{FullName: "Ada"},
		Sections: []types.ResumeSection{
			{ID: "exp", Type: "experience", Items: []types.ResumeItem{{Title: "Engineer"}}},
		},
	}

	assert.NoError(t, ValidateDocument(doc))
}
