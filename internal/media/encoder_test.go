//go:build unit

package media

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"edupress/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestEncode(t *testing.T) {
	enc := NewEncoder(0)
	require.EqualValues(t, MaxUploadSize, enc.Limit())

	got, err := enc.Encode(context.Background(), strings.NewReader("hello"), "text/plain")
	require.NoError(t, err)
	assert.Equal(t, "data:text/plain;base64,aGVsbG8=", got)
}

func TestEncodeDefaultsMimeType(t *testing.T) {
	got, err := NewEncoder(0).Encode(context.Background(), strings.NewReader("x"), "")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "data:application/octet-stream;base64,"))
}

func TestEncodeExactlyAtLimit(t *testing.T) {
	enc := NewEncoder(4)
	_, err := enc.Encode(context.Background(), bytes.NewReader(make([]byte, 4)), "image/png")
	assert.NoError(t, err)
}

func TestEncodeFixedLimitIs500KiB(t *testing.T) {
	require.EqualValues(t, 500*1024, MaxUploadSize)
	enc := NewEncoder(MaxUploadSize)

	_, err := enc.Encode(context.Background(), bytes.NewReader(make([]byte, 500*1024)), "image/png")
	require.NoError(t, err)

	_, err = enc.Encode(context.Background(), bytes.NewReader(make([]byte, 500*1024+1)), "image/png")
	require.Error(t, err)
	assert.Equal(t, apperr.KindCapacity, apperr.KindOf(err))
}

func TestEncodeOverLimit(t *testing.T) {
	enc := NewEncoder(MaxUploadSize)
	_, err := enc.Encode(context.Background(), bytes.NewReader(make([]byte, 600*1024)), "image/png")

	require.Error(t, err)
	assert.Equal(t, apperr.KindCapacity, apperr.KindOf(err))
}

func TestEncodeReadFailure(t *testing.T) {
	_, err := NewEncoder(0).Encode(context.Background(), failingReader{}, "image/png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk on fire")
}

func TestEncodeCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEncoder(0).Encode(ctx, strings.NewReader("x"), "text/plain")
	assert.ErrorIs(t, err, context.Canceled)
}
