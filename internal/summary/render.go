// internal/summary/render.go
package summary

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Render formats the report as narrative lines, one bullet per entry,
// indented by nesting depth.
func (r Report) Render() []string {
	if r.Note != "" {
		return []string{"- " + r.Note.Text(r.Baseline)}
	}

	var lines []string
	for _, g := range r.Groups {
		lines = append(lines, fmt.Sprintf("### 模型：%s / 测试类型：%s", g.Model, g.TestType))
		if g.Note != "" {
			lines = append(lines, "- "+g.Note.Text(r.Baseline), "")
			continue
		}
		for _, b := range g.Baselines {
			lines = append(lines, fmt.Sprintf("- 基准：%s GPU 型号 %s（样本数 %d）", r.Baseline, b.GPU, b.Samples))
			for _, s := range b.Scenarios {
				lines = append(lines, fmt.Sprintf("  - 场景：%s（样本数 %d）", s.Scenario.Label(), s.Samples))
				if s.Note != "" {
					lines = append(lines, "    - "+s.Note.Text(r.Baseline))
					continue
				}
				lines = append(lines, renderComparisons(s.Comparisons, r.Baseline, 2)...)
			}
			lines = append(lines, renderComparisons(b.Comparisons, r.Baseline, 1)...)
			lines = append(lines, "")
		}
	}
	return lines
}

// String joins Render with newlines.
func (r Report) String() string {
	return strings.Join(r.Render(), "\n")
}

func renderComparisons(cmps []Comparison, label string, depth int) []string {
	indent := strings.Repeat("  ", depth)
	var lines []string
	for _, c := range cmps {
		lines = append(lines, fmt.Sprintf("%s- 对比对象：%s / GPU %s（样本数 %d）", indent, c.Vendor, c.GPU, c.Samples))
		for _, l := range c.Lines {
			lines = append(lines, indent+"  - "+l.Format(label, c.Vendor))
		}
	}
	return lines
}

// Format renders the line as "指标 k：<label> h vs <vendor> o（差值 ±d，倍数 rx）".
func (l Line) Format(label, vendor string) string {
	return fmt.Sprintf("指标 %s：%s %.2f vs %s %.2f（差值 %+.2f，倍数 %sx）",
		l.Metric, label, l.Baseline, vendor, l.Other, l.Diff, formatRatio(l.Ratio))
}

func formatRatio(r float64) string {
	if math.IsInf(r, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", r)
}

// MarshalJSON encodes every non-finite number as null since JSON has no
// infinity or NaN.
func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Metric   string   `json:"metric"`
		Baseline *float64 `json:"baseline"`
		Other    *float64 `json:"other"`
		Diff     *float64 `json:"diff"`
		Ratio    *float64 `json:"ratio"`
	}{l.Metric, finite(l.Baseline), finite(l.Other), finite(l.Diff), finite(l.Ratio)})
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}
