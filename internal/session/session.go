// internal/session/session.go
// Package session reads and writes the project document the CLI works on.
package session

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mwiater/gpubench/internal/logging"
	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/util"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// Validate checks that data has the shape of a session document.
func Validate(data []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}
	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("session validation failed: %s", strings.Join(errs, ", "))
}

// Decode validates and decodes a session document.
func Decode(data []byte) (*record.Project, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	p := record.NewProject()
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	p.Normalize()
	return p, nil
}

// Load reads the session at path.
func Load(path string) (*record.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session %q: %w", path, err)
	}
	p, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Debug("session: loaded %s (%d perf rows)", path, len(p.Performance))
	return p, nil
}

// Save writes p to path as indented JSON.
func Save(path string, p *record.Project) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := util.WriteFile(path, append(data, '\n')); err != nil {
		return fmt.Errorf("write session %q: %w", path, err)
	}
	logging.Debug("session: saved %s", path)
	return nil
}
