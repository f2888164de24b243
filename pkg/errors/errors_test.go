package errors

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessage(t *testing.T) {
	err := New(ErrorTypeRemoteCallFailed, 400, "unfollow rejected")
	assert.Equal(t, "remote_call_failed error (code 400): unfollow rejected", err.Error())

	wrapped := Wrap(ErrorTypeStorage, fs.ErrPermission, "cannot read cache")
	assert.Contains(t, wrapped.Error(), "cannot read cache")
	assert.Contains(t, wrapped.Error(), fs.ErrPermission.Error())
}

func TestWrapKeepsCause(t *testing.T) {
	err := fmt.Errorf("load: %w", Wrap(ErrorTypeStorageAbsent, fs.ErrNotExist, "no cache file"))

	assert.True(t, stderrors.Is(err, fs.ErrNotExist))
	assert.True(t, IsType(err, ErrorTypeStorageAbsent))
	assert.False(t, IsType(err, ErrorTypeStorage))
}

func TestStatusCode(t *testing.T) {
	assert.Equal(t, 503, StatusCode(fmt.Errorf("x: %w", New(ErrorTypeServerError, 503, "down"))))
	assert.Equal(t, 0, StatusCode(stderrors.New("plain")))
}

func TestTypeForStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorType
	}{
		{401, ErrorTypeAuth},
		{403, ErrorTypeAuth},
		{404, ErrorTypeNotFound},
		{429, ErrorTypeRateLimit},
		{500, ErrorTypeServerError},
		{502, ErrorTypeServerError},
		{400, ErrorTypeRemoteCallFailed},
		{302, ErrorTypeRemoteCallFailed},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d", tt.status), func(t *testing.T) {
			assert.Equal(t, tt.want, TypeForStatus(tt.status))
		})
	}
}

func TestIsRemoteFailure(t *testing.T) {
	assert.True(t, IsRemoteFailure(New(ErrorTypeNetwork, 0, "dial")))
	assert.True(t, IsRemoteFailure(New(ErrorTypeAuth, 401, "expired")))
	assert.False(t, IsRemoteFailure(New(ErrorTypeStorage, 0, "disk")))
	assert.False(t, IsRemoteFailure(New(ErrorTypeParsing, 200, "bad json")))
	assert.False(t, IsRemoteFailure(stderrors.New("plain")))
}
