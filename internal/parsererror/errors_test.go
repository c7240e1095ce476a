package parsererror

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	inner := errors.New("no known layout matches")
	err := &ParseError{
		Format: "mpesa_statement",
		Field:  "date",
		Value:  "not a date",
		Err:    inner,
	}

	assert.Equal(t, "mpesa_statement: failed to parse date='not a date': no known layout matches", err.Error())
	assert.True(t, errors.Is(err, inner))
}

func TestParseErrorWithoutFormat(t *testing.T) {
	err := &ParseError{
		Field: "date",
		Value: "",
		Err:   errors.New("empty date string"),
	}

	assert.Equal(t, "failed to parse date='': empty date string", err.Error())
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{FilePath: "export.pdf", Reason: "expected a .csv upload"}
	assert.Equal(t, "validation failed for export.pdf: expected a .csv upload", err.Error())
}
