//go:build unit

package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"edupress/internal/apperr"
	"edupress/internal/logger"
	"edupress/internal/view"
	"edupress/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingReporter struct {
	reported []error
}

func (r *recordingReporter) Report(err error, fields map[string]string) {
	r.reported = append(r.reported, err)
}

func TestErrorMiddleware(t *testing.T) {
	v, err := view.New(web.TemplateFS)
	require.NoError(t, err)

	cases := []struct {
		name     string
		handler  AppHandler
		wantCode int
		reported int
	}{
		{"ok", func(w http.ResponseWriter, r *http.Request) error { return nil }, http.StatusOK, 0},
		{"not found", func(w http.ResponseWriter, r *http.Request) error { return apperr.NotFound("post", "x") }, http.StatusNotFound, 0},
		{"external", func(w http.ResponseWriter, r *http.Request) error { return apperr.External("upstream", nil) }, http.StatusBadGateway, 1},
		{"plain error", func(w http.ResponseWriter, r *http.Request) error { return errors.New("boom") }, http.StatusInternalServerError, 1},
		{"panic", func(w http.ResponseWriter, r *http.Request) error { panic("boom") }, http.StatusInternalServerError, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reporter := &recordingReporter{}
			h := Error(logger.Nop(), v, reporter)(tc.handler)

			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest("GET", "/post/x", nil))

			assert.Equal(t, tc.wantCode, rr.Code)
			assert.Len(t, reporter.reported, tc.reported)
			if tc.wantCode != http.StatusOK {
				assert.Contains(t, rr.Body.String(), http.StatusText(tc.wantCode))
			}
		})
	}
}
