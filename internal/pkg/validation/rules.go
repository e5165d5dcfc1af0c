package validation

import "strings"

// Academic year bounds. The upper bound is the current year and is supplied by the caller.
const (
	MinAcademicYear = 2000
)

// StringValidation checks a required free-text field
type StringValidation struct {
	Value     string
	Required  bool
	StripChar string
}

// NewStringValidation creates a new string validation
func NewStringValidation(value string) *StringValidation {
	return &StringValidation{
		Value:    value,
		Required: true,
	}
}

// IgnoringSpaces makes the required check ignore space characters, so "   " counts as empty.
func (v *StringValidation) IgnoringSpaces() *StringValidation {
	v.StripChar = " "
	return v
}

// Validate performs validation
func (v *StringValidation) Validate() bool {
	value := v.Value
	if v.StripChar != "" {
		value = strings.ReplaceAll(value, v.StripChar, "")
	}
	return !v.Required || value != ""
}

// NumericValidation checks an inclusive integer range
type NumericValidation struct {
	Value int
	Min   int
	Max   int
}

// NewNumericValidation creates a new numeric validation
func NewNumericValidation(value int) *NumericValidation {
	return &NumericValidation{Value: value}
}

// WithMin sets minimum value
func (v *NumericValidation) WithMin(min int) *NumericValidation {
	v.Min = min
	return v
}

// WithMax sets maximum value
func (v *NumericValidation) WithMax(max int) *NumericValidation {
	v.Max = max
	return v
}

// BelowMin reports whether the value is under the minimum
func (v *NumericValidation) BelowMin() bool {
	return v.Value < v.Min
}

// AboveMax reports whether the value is over the maximum
func (v *NumericValidation) AboveMax() bool {
	return v.Value > v.Max
}

// Validate performs validation
func (v *NumericValidation) Validate() bool {
	return !v.BelowMin() && !v.AboveMax()
}
