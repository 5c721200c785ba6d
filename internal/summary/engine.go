// internal/summary/engine.go
// Package summary compares every vendor's benchmark results against a
// baseline vendor, per model and test type, on the metrics picked as PK.
package summary

import (
	"fmt"
	"math"
	"strings"

	"github.com/mwiater/gpubench/internal/logging"
	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/testtype"
	"github.com/samber/lo"
)

// DefaultBaselineToken identifies the baseline vendor when none is configured.
const DefaultBaselineToken = "h3c"

// Note explains why part of a comparison produced no lines.
type Note string

const (
	NoteNoPerformance      Note = "no_performance"
	NoteNoBaseline         Note = "no_baseline"
	NoteNoMetric           Note = "no_metric"
	NoteNoScenarioBaseline Note = "no_scenario_baseline"
)

// Text renders the note for the narrative. label names the baseline vendor.
func (n Note) Text(label string) string {
	switch n {
	case NoteNoPerformance:
		return "暂无性能数据可用于对比分析。"
	case NoteNoBaseline:
		return fmt.Sprintf("无 %s 厂商 GPU 卡的数据；跳过本模型的 %s 对比。", label, label)
	case NoteNoMetric:
		return "未在 PK 表中选择对比指标，跳过本模型/测试类型的 PK 对比。"
	case NoteNoScenarioBaseline:
		return fmt.Sprintf("本场景下无 %s 数据，跳过。", label)
	default:
		return string(n)
	}
}

// Engine holds the baseline predicate.
type Engine struct {
	token string
}

// New returns an Engine whose baseline is any vendor containing token,
// compared case-insensitively. A blank token uses DefaultBaselineToken.
func New(token string) *Engine {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		token = DefaultBaselineToken
	}
	return &Engine{token: token}
}

// Label is the upper-cased baseline token used in report text.
func (e *Engine) Label() string { return strings.ToUpper(e.token) }

// IsBaseline reports whether vendor is the baseline vendor.
func (e *Engine) IsBaseline(vendor string) bool {
	if vendor == "" {
		return false
	}
	return strings.Contains(strings.ToLower(vendor), e.token)
}

// Report is the structured result of a comparison run.
type Report struct {
	Baseline string  `json:"baseline"`
	Note     Note    `json:"note,omitempty"`
	Groups   []Group `json:"groups"`
}

// Group covers one (model, test type) pair.
type Group struct {
	Model     string            `json:"model"`
	TestType  string            `json:"test_type"`
	Note      Note              `json:"note,omitempty"`
	Metrics   []string          `json:"metrics,omitempty"`
	Baselines []BaselineSection `json:"baselines,omitempty"`
}

// BaselineSection compares one baseline GPU model against the other vendors.
// Text inference groups fill Scenarios; all others fill Comparisons.
type BaselineSection struct {
	GPU         string            `json:"gpu"`
	Samples     int               `json:"samples"`
	Scenarios   []ScenarioSection `json:"scenarios,omitempty"`
	Comparisons []Comparison      `json:"comparisons,omitempty"`
}

// ScenarioSection is the comparison restricted to one scenario bucket.
type ScenarioSection struct {
	Scenario    Scenario     `json:"scenario"`
	Samples     int          `json:"samples"`
	Note        Note         `json:"note,omitempty"`
	Comparisons []Comparison `json:"comparisons,omitempty"`
}

// Comparison pits the baseline against one (vendor, GPU) pair.
type Comparison struct {
	Vendor  string `json:"vendor"`
	GPU     string `json:"gpu"`
	Samples int    `json:"samples"`
	Lines   []Line `json:"lines,omitempty"`
}

// Line is one metric compared. Ratio is +Inf when Other is zero.
type Line struct {
	Metric   string  `json:"metric"`
	Baseline float64 `json:"baseline"`
	Other    float64 `json:"other"`
	Diff     float64 `json:"diff"`
	Ratio    float64 `json:"ratio"`
}

type groupKey struct{ model, testType string }

type vendorKey struct{ vendor, gpu string }

// Compare builds the comparison report. It never fails: missing data turns
// into notes on the affected group or scenario.
func (e *Engine) Compare(perf []record.PerformanceRecord, pks []record.PKSelection) Report {
	report := Report{Baseline: e.Label()}
	if len(perf) == 0 {
		report.Note = NoteNoPerformance
		return report
	}

	rows := make([]*record.PerformanceRecord, len(perf))
	for i := range perf {
		rows[i] = &perf[i]
	}

	pkMap := make(map[groupKey]record.PKSelection, len(pks))
	for _, pk := range pks {
		pkMap[groupKey{pk.Model, pk.TestType}] = pk
	}

	keys, groups := orderedGroups(rows, func(r *record.PerformanceRecord) groupKey {
		return groupKey{r.Model, r.TestType}
	})
	for _, key := range keys {
		report.Groups = append(report.Groups, e.compareGroup(key, groups[key], pkMap))
	}
	return report
}

func (e *Engine) compareGroup(key groupKey, rows []*record.PerformanceRecord, pkMap map[groupKey]record.PKSelection) Group {
	group := Group{Model: key.model, TestType: key.testType}

	baseline, others := lo.FilterReject(rows, func(r *record.PerformanceRecord, _ int) bool {
		return e.IsBaseline(r.Vendor)
	})
	if len(baseline) == 0 {
		group.Note = NoteNoBaseline
		logging.Debug("summary: no baseline rows for %s / %s", key.model, key.testType)
		return group
	}

	pk, ok := pkMap[key]
	if !ok || len(pk.Metrics()) == 0 {
		group.Note = NoteNoMetric
		logging.Debug("summary: no pk metric selected for %s / %s", key.model, key.testType)
		return group
	}
	group.Metrics = pk.Metrics()

	gpus, byGPU := orderedGroups(baseline, func(r *record.PerformanceRecord) string { return r.GPU })
	text := testtype.IsTextInferenceName(key.testType)
	for _, gpu := range gpus {
		section := BaselineSection{GPU: gpu, Samples: len(byGPU[gpu])}
		if text {
			section.Scenarios = e.compareScenarios(gpu, rows, group.Metrics)
		} else {
			section.Comparisons = compareVendors(byGPU[gpu], others, group.Metrics)
		}
		group.Baselines = append(group.Baselines, section)
	}
	return group
}

// compareScenarios buckets every row of the group and compares the baseline
// GPU against other vendors inside each non-empty bucket.
func (e *Engine) compareScenarios(gpu string, rows []*record.PerformanceRecord, metrics []string) []ScenarioSection {
	buckets := bucket(rows)
	var sections []ScenarioSection
	for _, s := range Scenarios {
		scenRows := buckets[s]
		if len(scenRows) == 0 {
			continue
		}
		section := ScenarioSection{Scenario: s, Samples: len(scenRows)}
		baseline, others := lo.FilterReject(scenRows, func(r *record.PerformanceRecord, _ int) bool {
			return e.IsBaseline(r.Vendor)
		})
		baseline = lo.Filter(baseline, func(r *record.PerformanceRecord, _ int) bool {
			return r.GPU == gpu
		})
		if len(baseline) == 0 {
			section.Note = NoteNoScenarioBaseline
		} else {
			section.Comparisons = compareVendors(baseline, others, metrics)
		}
		sections = append(sections, section)
	}
	return sections
}

// compareVendors compares baseline means with each (vendor, GPU) group of others.
func compareVendors(baseline, others []*record.PerformanceRecord, metrics []string) []Comparison {
	baseMeans := make(map[string]float64, len(metrics))
	for _, m := range metrics {
		if v, ok := Mean(baseline, m); ok {
			baseMeans[m] = v
		}
	}

	keys, groups := orderedGroups(others, func(r *record.PerformanceRecord) vendorKey {
		return vendorKey{r.Vendor, r.GPU}
	})
	comparisons := make([]Comparison, 0, len(keys))
	for _, k := range keys {
		cmp := Comparison{Vendor: k.vendor, GPU: k.gpu, Samples: len(groups[k])}
		for _, m := range metrics {
			h, ok := baseMeans[m]
			if !ok {
				continue
			}
			o, ok := Mean(groups[k], m)
			if !ok {
				continue
			}
			cmp.Lines = append(cmp.Lines, NewLine(m, h, o))
		}
		comparisons = append(comparisons, cmp)
	}
	return comparisons
}

// NewLine computes diff and ratio for a metric.
func NewLine(metric string, baseline, other float64) Line {
	ratio := math.Inf(1)
	if other != 0 {
		ratio = baseline / other
	}
	return Line{
		Metric:   metric,
		Baseline: baseline,
		Other:    other,
		Diff:     baseline - other,
		Ratio:    ratio,
	}
}

// Mean averages the parseable values of metric across rows. ok is false
// when no row has a usable value.
func Mean(rows []*record.PerformanceRecord, metric string) (mean float64, ok bool) {
	var sum float64
	var n int
	for _, r := range rows {
		v, ok := r.Metric(metric).Float()
		if !ok {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// orderedGroups partitions rows by key, returning keys in first-occurrence order.
func orderedGroups[K comparable](rows []*record.PerformanceRecord, key func(*record.PerformanceRecord) K) ([]K, map[K][]*record.PerformanceRecord) {
	groups := lo.GroupBy(rows, key)
	keys := lo.Uniq(lo.Map(rows, func(r *record.PerformanceRecord, _ int) K { return key(r) }))
	return keys, groups
}
