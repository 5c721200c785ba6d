// internal/record/models.go
// Package record holds the session-scoped project aggregate and the rows it
// collects: environment entries, performance records, PK selections and problems.
package record

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// Problem categories.
const (
	CategoryTechnical = "技术问题"
	CategoryProject   = "项目问题"
)

// Bid outcomes that unlock follow-up metadata lines.
const (
	BidWon  = "已中标"
	BidLost = "未中标"
)

// EnvironmentEntry describes the test environment of one (model, test type, vendor).
type EnvironmentEntry struct {
	ID       string `json:"id"`
	Model    string `json:"model"`
	TestType string `json:"test_type"`
	Vendor   string `json:"vendor"`
	GPU      string `json:"gpu"`
	GPUCount Value  `json:"gpu_count"`
	Dataset  string `json:"dataset"`
	Tool     string `json:"tool"`
}

// PerformanceRecord holds the measured and derived values of one benchmark run.
// Every name in InputFields/CalcFields has an entry in InputValues/CalcValues.
type PerformanceRecord struct {
	ID          string           `json:"id"`
	Model       string           `json:"model"`
	TestType    string           `json:"test_type"`
	Vendor      string           `json:"vendor"`
	GPU         string           `json:"gpu"`
	Dataset     string           `json:"dataset"`
	GPUCount    Value            `json:"gpu_count"`
	InputFields []string         `json:"input_fields"`
	CalcFields  []string         `json:"calc_fields"`
	InputValues map[string]Value `json:"input_values"`
	CalcValues  map[string]Value `json:"calc_values"`
}

// Input returns the raw input value for field and whether the key exists.
func (r *PerformanceRecord) Input(field string) (Value, bool) {
	v, ok := r.InputValues[field]
	return v, ok
}

// Metric resolves a comparison metric: the derived value when present and
// non-blank, otherwise the input value.
func (r *PerformanceRecord) Metric(field string) Value {
	if v, ok := r.CalcValues[field]; ok && !v.Blank() {
		return v
	}
	return r.InputValues[field]
}

// SetCalc stores a derived value.
func (r *PerformanceRecord) SetCalc(field string, v Value) {
	if r.CalcValues == nil {
		r.CalcValues = make(map[string]Value)
	}
	r.CalcValues[field] = v
}

// HasInputField reports whether field belongs to the record's input schema.
func (r *PerformanceRecord) HasInputField(field string) bool {
	return lo.Contains(r.InputFields, field)
}

// normalize restores the value-map invariant after decoding or construction.
func (r *PerformanceRecord) normalize() {
	if r.InputValues == nil {
		r.InputValues = make(map[string]Value, len(r.InputFields))
	}
	if r.CalcValues == nil {
		r.CalcValues = make(map[string]Value, len(r.CalcFields))
	}
	for _, f := range r.InputFields {
		if _, ok := r.InputValues[f]; !ok {
			r.InputValues[f] = ""
		}
	}
	for _, f := range r.CalcFields {
		if _, ok := r.CalcValues[f]; !ok {
			r.CalcValues[f] = ""
		}
	}
}

// PKSelection records which metrics decide the head-to-head comparison for a
// (model, test type) pair.
type PKSelection struct {
	ID         string   `json:"id"`
	Model      string   `json:"model"`
	TestType   string   `json:"test_type"`
	PKOptions  []string `json:"pk_options"`
	SelectedPK string   `json:"selected_pk"`
}

// Metrics splits SelectedPK on commas, trims, drops empties and duplicates,
// and returns the result sorted.
func (p PKSelection) Metrics() []string {
	metrics := splitMetrics(p.SelectedPK)
	sort.Strings(metrics)
	return metrics
}

func splitMetrics(s string) []string {
	parts := lo.Map(strings.Split(s, ","), func(item string, _ int) string {
		return strings.TrimSpace(item)
	})
	return lo.Uniq(lo.Compact(parts))
}

// ProblemEntry is one issue raised during the project.
type ProblemEntry struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Person      string `json:"person"`
	Solution    string `json:"solution"`
}

// ValidCategory reports whether c is an accepted problem category.
func ValidCategory(c string) bool {
	return c == "" || c == CategoryTechnical || c == CategoryProject
}
