package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapDefaults(t *testing.T) {
	cause := errors.New("dial tcp: refused")

	e := Wrap(cause, &Opts{Kind: KindUpstream, Message: "Failed to generate report"})

	require.NotNil(t, e)
	assert.Equal(t, "Failed to generate report", e.Message)
	assert.Equal(t, "dial tcp: refused", e.Details)
	assert.Equal(t, http.StatusInternalServerError, e.Status())
	assert.ErrorIs(t, e, cause)
}

func TestWrapKeepsExistingError(t *testing.T) {
	inner := New(KindConfig, "API key not configured", "missing")
	wrapped := fmt.Errorf("generate: %w", inner)

	e := Wrap(wrapped, &Opts{Kind: KindUpstream})

	assert.Same(t, inner, e)
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, nil))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, Validation(ErrUnknownRole).Status())
	assert.Equal(t, http.StatusNotFound, NotFound("job").Status())
	assert.Equal(t, http.StatusInternalServerError, New(KindConfig, "x", "").Status())
}

func TestAs(t *testing.T) {
	_, ok := As(errors.New("plain"))
	assert.False(t, ok)

	e, ok := As(fmt.Errorf("ctx: %w", NotFound("job 1")))
	require.True(t, ok)
	assert.Equal(t, "job 1", e.Details)
}
