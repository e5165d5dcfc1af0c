package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringValidationIgnoringSpaces(t *testing.T) {
	assert.False(t, NewStringValidation("   ").IgnoringSpaces().Validate())
	assert.False(t, NewStringValidation("").Validate())
	assert.True(t, NewStringValidation("   ").Validate())
	assert.True(t, NewStringValidation(" Notes ").IgnoringSpaces().Validate())
}

func TestNumericValidationInclusiveRange(t *testing.T) {
	check := func(v int) *NumericValidation {
		return NewNumericValidation(v).WithMin(MinAcademicYear).WithMax(2026)
	}

	assert.True(t, check(2000).Validate())
	assert.True(t, check(2026).Validate())
	assert.True(t, check(1999).BelowMin())
	assert.True(t, check(2027).AboveMax())
	assert.False(t, check(2027).Validate())
}

type sampleRequest struct {
	Title string `validate:"required"`
	URL   string `validate:"required,url"`
}

func TestStructFormatsFieldErrors(t *testing.T) {
	err := Struct(sampleRequest{URL: "not a url"})
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Title is required")
		assert.Contains(t, err.Error(), "URL must be a valid URL")
	}

	assert.NoError(t, Struct(sampleRequest{Title: "Docs", URL: "https://example.com"}))
}
