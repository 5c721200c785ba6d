// internal/record/project.go
package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mwiater/gpubench/internal/testtype"
	"github.com/mwiater/gpubench/internal/vendor"
	"github.com/samber/lo"
)

// ErrNotFound is returned when a command addresses a row ID that does not exist.
var ErrNotFound = errors.New("record not found")

// Project is the session aggregate. All rows live and are reset together.
type Project struct {
	Name             string              `json:"project_name"`
	TestCycle        string              `json:"test_cycle"`
	VendorString     string              `json:"vendor_str"`
	CustomerName     string              `json:"customer_name"`
	CustomerIndustry string              `json:"customer_industry"`
	BidStatus        string              `json:"bid_status"`
	BidShare         string              `json:"bid_share"`
	BidFailReason    string              `json:"bid_fail_reason"`
	TestOwner        string              `json:"test_owner"`
	SelectedModels   []string            `json:"selected_models"`
	ModelTestTypes   map[string][]string `json:"model_test_types"`
	Environment      []EnvironmentEntry  `json:"env_data"`
	Performance      []PerformanceRecord `json:"perf_data"`
	PKSelections     []PKSelection       `json:"pk_data"`
	Problems         []ProblemEntry      `json:"problem_data"`
	Summary          string              `json:"project_summary,omitempty"`
}

// NewProject returns an empty project holding the single blank problem row
// every session starts with.
func NewProject() *Project {
	p := &Project{}
	p.Reset()
	return p
}

func newID() string { return uuid.NewString() }

// Reset discards all metadata and rows.
func (p *Project) Reset() {
	*p = Project{
		ModelTestTypes: make(map[string][]string),
		Problems:       []ProblemEntry{{ID: newID()}},
	}
}

// Normalize restores invariants on a project decoded from outside: value
// maps cover every schema field and at least one problem row exists.
func (p *Project) Normalize() {
	if p.ModelTestTypes == nil {
		p.ModelTestTypes = make(map[string][]string)
	}
	for i := range p.Performance {
		if p.Performance[i].ID == "" {
			p.Performance[i].ID = newID()
		}
		p.Performance[i].normalize()
	}
	if len(p.Problems) == 0 {
		p.Problems = []ProblemEntry{{ID: newID()}}
	}
}

// Vendors parses the project's vendor string.
func (p *Project) Vendors() []vendor.Vendor {
	return vendor.Parse(p.VendorString)
}

// SetModel selects a model with the given test types, replacing any earlier
// selection for the same name.
func (p *Project) SetModel(name string, testTypes []string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("model name is required")
	}
	types := lo.Uniq(lo.Compact(lo.Map(testTypes, func(tt string, _ int) string {
		return strings.TrimSpace(tt)
	})))
	if len(types) == 0 {
		return fmt.Errorf("model %q must select at least one test type", name)
	}
	if p.ModelTestTypes == nil {
		p.ModelTestTypes = make(map[string][]string)
	}
	if !lo.Contains(p.SelectedModels, name) {
		p.SelectedModels = append(p.SelectedModels, name)
	}
	p.ModelTestTypes[name] = types
	return nil
}

// InitEnvironment builds one environment row per selected model, test type
// and parsed vendor, replacing any existing rows.
func (p *Project) InitEnvironment() {
	vendors := p.Vendors()
	p.Environment = nil
	for _, model := range p.SelectedModels {
		for _, tt := range p.ModelTestTypes[model] {
			for _, v := range vendors {
				p.Environment = append(p.Environment, EnvironmentEntry{
					ID:       newID(),
					Model:    model,
					TestType: tt,
					Vendor:   v.Name,
					GPU:      v.GPU,
				})
			}
		}
	}
}

// AddEnvironment appends a row and returns its ID.
func (p *Project) AddEnvironment(e EnvironmentEntry) string {
	e.ID = newID()
	p.Environment = append(p.Environment, e)
	return e.ID
}

// UpdateEnvironment applies fn to the row with the given ID. The ID is preserved.
func (p *Project) UpdateEnvironment(id string, fn func(*EnvironmentEntry)) error {
	for i := range p.Environment {
		if p.Environment[i].ID == id {
			fn(&p.Environment[i])
			p.Environment[i].ID = id
			return nil
		}
	}
	return fmt.Errorf("environment %s: %w", id, ErrNotFound)
}

// RemoveEnvironment deletes the row with the given ID.
func (p *Project) RemoveEnvironment(id string) error {
	for i := range p.Environment {
		if p.Environment[i].ID == id {
			p.Environment = append(p.Environment[:i], p.Environment[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("environment %s: %w", id, ErrNotFound)
}

// NewPerformanceRecord builds a record whose fields come from the test type schema.
func NewPerformanceRecord(model, testType, vendorName, gpu, dataset string, gpuCount Value) PerformanceRecord {
	schema := testtype.SchemaFor(testType)
	r := PerformanceRecord{
		ID:          newID(),
		Model:       model,
		TestType:    testType,
		Vendor:      vendorName,
		GPU:         gpu,
		Dataset:     dataset,
		GPUCount:    gpuCount,
		InputFields: schema.Inputs,
		CalcFields:  schema.Calcs,
	}
	if r.InputFields == nil {
		r.InputFields = []string{}
	}
	if r.CalcFields == nil {
		r.CalcFields = []string{}
	}
	r.normalize()
	return r
}

// InitPerformance derives one performance record per environment row, one
// PK selection per distinct selected (model, test type) pair, and resets the
// problem list to a single blank row.
func (p *Project) InitPerformance() {
	p.Performance = make([]PerformanceRecord, 0, len(p.Environment))
	for _, env := range p.Environment {
		p.Performance = append(p.Performance,
			NewPerformanceRecord(env.Model, env.TestType, env.Vendor, env.GPU, env.Dataset, env.GPUCount))
	}

	p.PKSelections = nil
	seen := make(map[[2]string]struct{})
	for _, model := range p.SelectedModels {
		for _, tt := range p.ModelTestTypes[model] {
			key := [2]string{model, tt}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			p.PKSelections = append(p.PKSelections, PKSelection{
				ID:        newID(),
				Model:     model,
				TestType:  tt,
				PKOptions: pkOptions(tt),
			})
		}
	}

	p.Problems = []ProblemEntry{{ID: newID()}}
}

// AddPerformance appends a record for an extra run and returns its ID.
func (p *Project) AddPerformance(model, testType, vendorName, gpu, dataset string, gpuCount Value) string {
	r := NewPerformanceRecord(model, testType, vendorName, gpu, dataset, gpuCount)
	p.Performance = append(p.Performance, r)
	return r.ID
}

// RemovePerformance deletes the record with the given ID.
func (p *Project) RemovePerformance(id string) error {
	for i := range p.Performance {
		if p.Performance[i].ID == id {
			p.Performance = append(p.Performance[:i], p.Performance[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("performance %s: %w", id, ErrNotFound)
}

// FindPerformance returns a pointer to the record with the given ID.
func (p *Project) FindPerformance(id string) (*PerformanceRecord, error) {
	for i := range p.Performance {
		if p.Performance[i].ID == id {
			return &p.Performance[i], nil
		}
	}
	return nil, fmt.Errorf("performance %s: %w", id, ErrNotFound)
}

// SetInputValue stores a measured value. The field must be part of the
// record's input schema.
func (p *Project) SetInputValue(id, field string, value Value) error {
	r, err := p.FindPerformance(id)
	if err != nil {
		return err
	}
	if !r.HasInputField(field) {
		return fmt.Errorf("field %q is not an input of test type %q", field, r.TestType)
	}
	r.InputValues[field] = Value(strings.TrimSpace(string(value)))
	return nil
}

// SelectPK sets the comparison metrics for (model, testType). Every metric
// must be one of the pair's PK options; an empty selection clears it.
func (p *Project) SelectPK(model, testType, selection string) error {
	for i := range p.PKSelections {
		pk := &p.PKSelections[i]
		if pk.Model != model || pk.TestType != testType {
			continue
		}
		metrics := splitMetrics(selection)
		for _, m := range metrics {
			if !lo.Contains(pk.PKOptions, m) {
				return fmt.Errorf("metric %q is not available for %s / %s", m, model, testType)
			}
		}
		pk.SelectedPK = strings.Join(metrics, ",")
		return nil
	}
	return fmt.Errorf("pk selection %s / %s: %w", model, testType, ErrNotFound)
}

// AddProblem appends a problem row and returns its ID.
func (p *Project) AddProblem(e ProblemEntry) (string, error) {
	if !ValidCategory(e.Category) {
		return "", fmt.Errorf("unknown problem category %q", e.Category)
	}
	e.ID = newID()
	p.Problems = append(p.Problems, e)
	return e.ID, nil
}

// UpdateProblem applies fn to the problem with the given ID.
func (p *Project) UpdateProblem(id string, fn func(*ProblemEntry)) error {
	for i := range p.Problems {
		if p.Problems[i].ID != id {
			continue
		}
		updated := p.Problems[i]
		fn(&updated)
		if !ValidCategory(updated.Category) {
			return fmt.Errorf("unknown problem category %q", updated.Category)
		}
		updated.ID = id
		p.Problems[i] = updated
		return nil
	}
	return fmt.Errorf("problem %s: %w", id, ErrNotFound)
}

// RemoveProblem deletes a problem. Removing the last row leaves a blank one.
func (p *Project) RemoveProblem(id string) error {
	for i := range p.Problems {
		if p.Problems[i].ID == id {
			p.Problems = append(p.Problems[:i], p.Problems[i+1:]...)
			if len(p.Problems) == 0 {
				p.Problems = []ProblemEntry{{ID: newID()}}
			}
			return nil
		}
	}
	return fmt.Errorf("problem %s: %w", id, ErrNotFound)
}

// ProblemsIn returns the problems filed under category, in entry order.
func (p *Project) ProblemsIn(category string) []ProblemEntry {
	return lo.Filter(p.Problems, func(e ProblemEntry, _ int) bool {
		return e.Category == category
	})
}

// EnvironmentTestTypes lists distinct test types of the environment rows in first-seen order.
func (p *Project) EnvironmentTestTypes() []string {
	return lo.Uniq(lo.Map(p.Environment, func(e EnvironmentEntry, _ int) string {
		return e.TestType
	}))
}

func pkOptions(testType string) []string {
	tt, _ := testtype.Parse(testType)
	return tt.PKOptions()
}
