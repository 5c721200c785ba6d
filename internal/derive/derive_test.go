// internal/derive/derive_test.go
package derive

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/mwiater/gpubench/internal/record"
	"github.com/mwiater/gpubench/internal/testtype"
	"pgregory.net/rapid"
)

func textRecord(in, out, total string, gpus record.Value) record.PerformanceRecord {
	r := record.NewPerformanceRecord("M1", "文本推理", "H3C", "A100", "", gpus)
	r.InputValues[testtype.FieldInputLength] = record.Value(in)
	r.InputValues[testtype.FieldOutputLength] = record.Value(out)
	r.InputValues[testtype.FieldTotalThroughput] = record.Value(total)
	return r
}

func TestCalculate(t *testing.T) {
	cases := []struct {
		name        string
		rec         record.PerformanceRecord
		totalOutput record.Value
		singleCard  record.Value
		updated     bool
	}{
		{"example", textRecord("30", "70", "100", "2"), "70.00", "35.00", true},
		{"blank lengths", textRecord("", "", "100", "2"), "0.00", "0.00", true},
		{"blank gpu count", textRecord("50", "50", "10", ""), "5.00", "5.00", true},
		{"zero gpu count", textRecord("50", "50", "10", "0"), "5.00", "0.00", true},
		{"non numeric", textRecord("abc", "50", "10", "1"), "", "", false},
		{"non numeric gpu", textRecord("50", "50", "10", "x"), "", "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			records := []record.PerformanceRecord{c.rec}
			res := Calculate(records)
			if (res.Updated == 1) != c.updated {
				t.Fatalf("unexpected result %+v", res)
			}
			got := records[0].CalcValues
			if got[testtype.FieldTotalOutputThroughput] != c.totalOutput {
				t.Errorf("total output: got %q want %q", got[testtype.FieldTotalOutputThroughput], c.totalOutput)
			}
			if got[testtype.FieldSingleCardThroughput] != c.singleCard {
				t.Errorf("single card: got %q want %q", got[testtype.FieldSingleCardThroughput], c.singleCard)
			}
		})
	}
}

func TestCalculateSkipsMissingKeys(t *testing.T) {
	r := textRecord("30", "70", "100", "1")
	delete(r.InputValues, testtype.FieldTotalThroughput)
	records := []record.PerformanceRecord{r}
	if res := Calculate(records); res.Skipped != 1 || res.Updated != 0 {
		t.Fatalf("expected skip, got %+v", res)
	}
	if v := records[0].CalcValues[testtype.FieldTotalOutputThroughput]; v != "" {
		t.Fatalf("expected untouched calc value, got %q", v)
	}
}

func TestCalculateIgnoresOtherTestTypes(t *testing.T) {
	r := record.NewPerformanceRecord("M1", "图像识别", "H3C", "A100", "", "1")
	r.InputValues[testtype.FieldFPS] = "30"
	res := Calculate([]record.PerformanceRecord{r})
	if res.Updated != 0 || res.Skipped != 0 {
		t.Fatalf("expected no work for image recognition, got %+v", res)
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := rapid.IntRange(0, 20000).Draw(t, "in")
		out := rapid.IntRange(0, 20000).Draw(t, "out")
		total := rapid.Float64Range(0, 1e5).Draw(t, "total")
		gpus := rapid.IntRange(0, 16).Draw(t, "gpus")

		r := textRecord(fmt.Sprint(in), fmt.Sprint(out), fmt.Sprintf("%.3f", total), record.Value(fmt.Sprint(gpus)))
		records := []record.PerformanceRecord{r}
		Calculate(records)
		first := make(map[string]record.Value)
		for k, v := range records[0].CalcValues {
			first[k] = v
		}
		Calculate(records)
		if !reflect.DeepEqual(first, records[0].CalcValues) {
			t.Fatalf("second pass changed values: %v -> %v", first, records[0].CalcValues)
		}
	})
}
