// internal/record/value.go
package record

import (
	"strconv"
	"strings"
)

// Value is a measured quantity kept as the text the user entered. A blank
// value is distinct from "0": it means nothing was recorded.
type Value string

// Blank reports whether v holds no text beyond whitespace.
func (v Value) Blank() bool {
	return strings.TrimSpace(string(v)) == ""
}

// Float parses v. ok is false for blank and non-numeric values.
func (v Value) Float() (f float64, ok bool) {
	if v.Blank() {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(v)), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FloatOr parses v, substituting def when v is blank. ok is false only when
// v holds non-numeric text.
func (v Value) FloatOr(def float64) (f float64, ok bool) {
	if v.Blank() {
		return def, true
	}
	return v.Float()
}

func (v Value) String() string { return string(v) }

// FormatFixed renders f with exactly two decimals.
func FormatFixed(f float64) Value {
	return Value(strconv.FormatFloat(f, 'f', 2, 64))
}
