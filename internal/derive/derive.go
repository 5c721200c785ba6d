// internal/derive/derive.go
// Package derive fills the computed throughput fields of text inference records.
package derive

import (
	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/testtype"
)

var requiredFields = []string{
	testtype.FieldInputLength,
	testtype.FieldOutputLength,
	testtype.FieldTotalThroughput,
}

// Result counts what a Calculate pass did. Records of other test types are
// not counted.
type Result struct {
	Updated int
	Skipped int
}

// Throughput holds the two derived metrics of a record.
type Throughput struct {
	TotalOutput float64
	SingleCard  float64
}

// Calculate derives throughput for every text inference record in place.
func Calculate(records []record.PerformanceRecord) Result {
	var res Result
	for i := range records {
		if !testtype.IsTextInferenceName(records[i].TestType) {
			continue
		}
		if Apply(&records[i]) {
			res.Updated++
		} else {
			res.Skipped++
		}
	}
	return res
}

// Apply derives throughput for one record and writes both values with two
// decimals. It returns false, leaving the record untouched, when a required
// input key is missing or any value is non-numeric.
func Apply(r *record.PerformanceRecord) bool {
	tp, ok := Compute(r)
	if !ok {
		return false
	}
	r.SetCalc(testtype.FieldTotalOutputThroughput, record.FormatFixed(tp.TotalOutput))
	r.SetCalc(testtype.FieldSingleCardThroughput, record.FormatFixed(tp.SingleCard))
	return true
}

// Compute evaluates the derived metrics without mutating r. Blank lengths and
// throughput count as 0, a blank GPU count as 1.
func Compute(r *record.PerformanceRecord) (Throughput, bool) {
	for _, f := range requiredFields {
		if _, ok := r.Input(f); !ok {
			return Throughput{}, false
		}
	}

	inputLen, ok1 := r.InputValues[testtype.FieldInputLength].FloatOr(0)
	outputLen, ok2 := r.InputValues[testtype.FieldOutputLength].FloatOr(0)
	total, ok3 := r.InputValues[testtype.FieldTotalThroughput].FloatOr(0)
	gpus, ok4 := r.GPUCount.FloatOr(1)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return Throughput{}, false
	}

	var tp Throughput
	if inputLen+outputLen > 0 {
		tp.TotalOutput = total * (outputLen / (inputLen + outputLen))
	}
	if gpus > 0 {
		tp.SingleCard = tp.TotalOutput / gpus
	}
	return tp, true
}
