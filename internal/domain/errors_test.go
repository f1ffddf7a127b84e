package domain_test

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/perfgate/perfgate/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLoadError_Unwraps(t *testing.T) {
	err := fmt.Errorf("check: %w", &domain.LoadError{Path: "r.json", Err: os.ErrNotExist})

	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.True(t, domain.IsInputError(err))
	assert.Contains(t, err.Error(), "cannot read results file")
}

func TestFormatError_Message(t *testing.T) {
	err := &domain.FormatError{Path: "r.json", Err: errors.New("metrics is not an object")}

	assert.Equal(t, "parsing r.json: metrics is not an object", err.Error())
	assert.True(t, domain.IsInputError(err))
}

func TestIsInputError_OtherErrors(t *testing.T) {
	assert.False(t, domain.IsInputError(domain.ErrSLANotMet))
	assert.False(t, domain.IsInputError(&domain.UsageError{Reason: "expected 1 argument"}))
	assert.False(t, domain.IsInputError(nil))
}
