package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/library"
	"github.com/jonathan/resume-optimizer/internal/schemas"
	"github.com/jonathan/resume-optimizer/internal/types"
)

// loadDocument reads a structured document JSON artifact.
func loadDocument(path string) (*types.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document file: %w", err)
	}

	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document JSON: %w", err)
	}

	validateArtifact("schemas/document.schema.json", path)
	return &doc, nil
}

// loadLibrary reads a project library from either a JSON artifact or the
// plain-text block format, depending on the file extension.
func loadLibrary(path string) ([]types.ProjectEntry, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read library file: %w", err)
		}
		var lib types.ProjectLibrary
		if err := json.Unmarshal(data, &lib); err != nil {
			return nil, fmt.Errorf("failed to parse library JSON: %w", err)
		}
		validateArtifact("schemas/project_library.schema.json", path)
		return lib.Projects, nil
	}

	return library.LoadFile(path)
}

// writeJSONArtifact writes v as indented JSON, creating parent directories.
func writeJSONArtifact(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// validateArtifact validates a JSON artifact against its schema. Validation
// problems are warnings, not failures: a schema mismatch should never stop a
// step that can otherwise proceed.
func validateArtifact(schemaRelPath, jsonPath string) {
	schemaPath := schemas.ResolveSchemaPath(schemaRelPath)
	if schemaPath == "" {
		return
	}

	if err := schemas.ValidateJSON(schemaPath, jsonPath); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s does not match %s:\n%v\n", jsonPath, schemaRelPath, err)
	}
}
