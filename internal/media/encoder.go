// Package media turns uploaded blobs into data URIs for inline storage.
package media

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"edupress/internal/apperr"
)

// MaxUploadSize is the largest blob accepted by the media library.
const MaxUploadSize = 500 * 1024

const defaultMimeType = "application/octet-stream"

// Encoder reads a blob and returns it as a base64 data URI.
type Encoder struct {
	limit int64
}

// NewEncoder returns an Encoder that refuses to read more than limit bytes.
// A non-positive limit falls back to MaxUploadSize.
func NewEncoder(limit int64) *Encoder {
	if limit <= 0 {
		limit = MaxUploadSize
	}
	return &Encoder{limit: limit}
}

// Limit returns the configured maximum blob size in bytes.
func (e *Encoder) Limit() int64 {
	return e.limit
}

// Encode reads r to the end and returns "data:<mime>;base64,<payload>".
func (e *Encoder) Encode(ctx context.Context, r io.Reader, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, &contextReader{ctx: ctx, r: io.LimitReader(r, e.limit+1)})
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if n > e.limit {
		return "", apperr.Capacity(fmt.Sprintf("file exceeds the %d KB limit", e.limit/1024))
	}

	mimeType = strings.TrimSpace(mimeType)
	if mimeType == "" {
		mimeType = defaultMimeType
	}
	return "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// contextReader stops reading once ctx is done.
type contextReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *contextReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
