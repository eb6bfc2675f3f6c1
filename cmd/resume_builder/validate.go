package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate resume documents against the JSON Schema",
	Long:  "Checks each --json file against the built-in resume document schema, or against --schema when given.",
	RunE:  runValidate,
}

var (
	validateSchemaFile string
	validateJSONFiles  []string
)

func init() {
	validateCmd.Flags().StringVarP(&validateSchemaFile, "schema", "s", "", "Path to a JSON Schema file (default: built-in resume document schema)")
	validateCmd.Flags().StringSliceVarP(&validateJSONFiles, "json", "j", nil, "Path to a JSON file to validate (repeatable)")

	_ = validateCmd.MarkFlagRequired("json")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	failed := 0

	for _, path := range validateJSONFiles {
		err := validateFile(validateSchemaFile, path)
		if err == nil {
			_, _ = fmt.Fprintf(out, "Validation passed: %s\n", path)
			continue
		}

		failed++
		var validationErr *schemas.ValidationError
		if !errors.As(err, &validationErr) {
			return err
		}
		_, _ = fmt.Fprintf(out, "Validation failed: %s\n%s", path, validationErr.Error())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed validation", failed, len(validateJSONFiles))
	}
	return nil
}

// validateFile checks path against schemaPath, or the embedded document
// schema when schemaPath is empty.
func validateFile(schemaPath, path string) error {
	if schemaPath != "" {
		return schemas.ValidateJSON(schemaPath, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return schemas.ValidateDocumentJSON(data)
}
