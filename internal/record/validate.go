// internal/record/validate.go
package record

import (
	"errors"
	"fmt"
	"strings"
)

// ValidateBasics checks the project header before models are chosen.
func (p *Project) ValidateBasics() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("project name is required")
	}
	if strings.TrimSpace(p.VendorString) == "" {
		return errors.New("vendor list is required")
	}
	return nil
}

// ValidateModels checks that at least one model is selected and that every
// selected model carries a test type.
func (p *Project) ValidateModels() error {
	if len(p.SelectedModels) == 0 {
		return errors.New("at least one model with a test type is required")
	}
	for _, m := range p.SelectedModels {
		if len(p.ModelTestTypes[m]) == 0 {
			return fmt.Errorf("model %q must select at least one test type", m)
		}
	}
	return nil
}

// ValidateEnvironment checks that every environment row names its GPU count and dataset.
func (p *Project) ValidateEnvironment() error {
	if len(p.Environment) == 0 {
		return errors.New("environment rows are required")
	}
	for i, e := range p.Environment {
		if e.GPUCount.Blank() {
			return fmt.Errorf("environment row %d: gpu count is required", i+1)
		}
		if strings.TrimSpace(e.Dataset) == "" {
			return fmt.Errorf("environment row %d: dataset is required", i+1)
		}
	}
	return nil
}
