// internal/summary/scenario.go
package summary

import (
	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/testtype"
)

// Scenario is a reporting bucket for text inference records. A record gets
// at most one direction scenario and always exactly one context scenario.
type Scenario int

const (
	ShortInputLongOutput Scenario = iota
	LongInputShortOutput
	ShortContext
	MidContext
	LongContext
)

// Scenarios lists every bucket in report order.
var Scenarios = []Scenario{
	ShortInputLongOutput,
	LongInputShortOutput,
	ShortContext,
	MidContext,
	LongContext,
}

const (
	midContextStart  = 4096
	longContextStart = 8192
)

// Label is the heading used in the narrative.
func (s Scenario) Label() string {
	switch s {
	case ShortInputLongOutput:
		return "短输入长输出"
	case LongInputShortOutput:
		return "长输入短输出"
	case ShortContext:
		return "总上下文短( <4096 )"
	case MidContext:
		return "总上下文中(4096-8191)"
	case LongContext:
		return "总上下文长( >=8192 )"
	default:
		return ""
	}
}

func (s Scenario) String() string { return s.Label() }

// DirectionTag classifies by which side of the exchange is longer. Equal
// lengths fall in neither bucket.
func DirectionTag(input, output float64) (Scenario, bool) {
	switch {
	case input < output:
		return ShortInputLongOutput, true
	case input > output:
		return LongInputShortOutput, true
	default:
		return 0, false
	}
}

// ContextTag classifies by total context length.
func ContextTag(input, output float64) Scenario {
	total := input + output
	switch {
	case total < midContextStart:
		return ShortContext
	case total <= longContextStart-1:
		return MidContext
	default:
		return LongContext
	}
}

// tokenLengths reads a record's token lengths for bucketing. An empty value
// counts as zero. If either value is non-numeric, whitespace-only included,
// both count as zero.
func tokenLengths(r *record.PerformanceRecord) (input, output float64) {
	in, ok1 := lengthValue(r.InputValues[testtype.FieldInputLength])
	out, ok2 := lengthValue(r.InputValues[testtype.FieldOutputLength])
	if !ok1 || !ok2 {
		return 0, 0
	}
	return in, out
}

func lengthValue(v record.Value) (float64, bool) {
	if v != "" && v.Blank() {
		return 0, false
	}
	return v.FloatOr(0)
}

// Tags returns every scenario r belongs to.
func Tags(r *record.PerformanceRecord) []Scenario {
	in, out := tokenLengths(r)
	var tags []Scenario
	if dir, ok := DirectionTag(in, out); ok {
		tags = append(tags, dir)
	}
	return append(tags, ContextTag(in, out))
}

// bucket assigns rows to scenarios, preserving row order within each bucket.
func bucket(rows []*record.PerformanceRecord) map[Scenario][]*record.PerformanceRecord {
	out := make(map[Scenario][]*record.PerformanceRecord)
	for _, r := range rows {
		for _, s := range Tags(r) {
			out[s] = append(out[s], r)
		}
	}
	return out
}
