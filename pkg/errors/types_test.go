package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPCodeMapping(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeMissingField, http.StatusBadRequest},
		{ErrCodeCancelled, http.StatusServiceUnavailable},
		{ErrCodeServiceDown, http.StatusServiceUnavailable},
		{ErrCodeAPITimeout, http.StatusRequestTimeout},
		{ErrCodeExternalService, http.StatusBadGateway},
		{ErrCodeDownloadFailed, http.StatusInternalServerError},
		{ErrCodeTransformFailed, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "boom").GetHTTPCode())
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, ErrCodeDownloadFailed, "failed to download segment 3")

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "DOWNLOAD_FAILED")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestWithDetail(t *testing.T) {
	err := ValidationError("segments", "at least one segment URL is required")

	require.NotNil(t, err.Details)
	assert.Equal(t, "segments", err.Details["field"])
	assert.Equal(t, http.StatusBadRequest, err.GetHTTPCode())
}

func TestIsAndGetCode(t *testing.T) {
	err := MissingFieldError("output_url")

	assert.True(t, Is(err, ErrCodeMissingField))
	assert.False(t, Is(err, ErrCodeValidation))
	assert.Equal(t, ErrCodeMissingField, GetCode(err))

	plain := stderrors.New("plain")
	assert.False(t, Is(plain, ErrCodeMissingField))
	assert.Equal(t, ErrCodeInternal, GetCode(plain))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(plain))
}

func TestCancelledError(t *testing.T) {
	err := CancelledError("download", stderrors.New("context canceled"))

	assert.Equal(t, ErrCodeCancelled, err.Code)
	assert.Equal(t, http.StatusServiceUnavailable, err.GetHTTPCode())
	assert.Equal(t, "download", err.Details["operation"])
}
