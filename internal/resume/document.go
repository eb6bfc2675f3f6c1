package resume

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/types"
)

// maxDocumentBytes bounds how much of a stream DecodeDocument will read.
const maxDocumentBytes = 8 << 20

// LoadDocument loads a resume document from a JSON file
func LoadDocument(path string) (*types.ResumeDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	defer func() { _ = f.Close() }()

	return DecodeDocument(f)
}

// DecodeDocument reads a JSON document from r. The raw bytes are checked
// against the resume document schema before decoding.
func DecodeDocument(r io.Reader) (*types.ResumeDocument, error) {
	content, err := io.ReadAll(io.LimitReader(r, maxDocumentBytes+1))
	if err != nil {
		return nil, &LoadError{Message: "failed to read document", Cause: err}
	}
	if len(content) > maxDocumentBytes {
		return nil, &LoadError{Message: fmt.Sprintf("document exceeds %d bytes", maxDocumentBytes)}
	}

	if err := schemas.ValidateDocumentJSON(content); err != nil {
		return nil, &LoadError{Message: "document does not match schema", Cause: err}
	}

	var doc types.ResumeDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	return &doc, nil
}

// ReadDocument reads the file at path and checks it against the schema,
// returning the bytes as written so they can be patched without losing
// properties the document model does not know about.
func ReadDocument(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}
	if _, err := DecodeDocument(bytes.NewReader(raw)); err != nil {
		return nil, err
	}
	return raw, nil
}

// SetProfilePicture returns raw with personalInfo.profilePicture set to
// value. Every other property, known or not, is carried over unchanged.
func SetProfilePicture(raw []byte, value string) ([]byte, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Message: "failed to unmarshal JSON", Cause: err}
	}
	if doc == nil {
		doc = make(map[string]json.RawMessage)
	}

	var info map[string]json.RawMessage
	if existing, ok := doc["personalInfo"]; ok {
		if err := json.Unmarshal(existing, &info); err != nil {
			return nil, &LoadError{Message: "personalInfo is not an object", Cause: err}
		}
	}
	if info == nil {
		info = make(map[string]json.RawMessage)
	}

	var err error
	if info["profilePicture"], err = marshalRaw(value); err != nil {
		return nil, err
	}
	if doc["personalInfo"], err = marshalRaw(info); err != nil {
		return nil, err
	}
	out, err := marshalRaw(doc)
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// marshalRaw encodes v as indented JSON without HTML escaping.
func marshalRaw(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// WriteDocument writes document bytes to path.
func WriteDocument(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}
	return nil
}
