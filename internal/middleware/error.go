package middleware

import (
	"fmt"
	"net/http"

	"edupress/internal/apperr"
	"edupress/internal/logger"
	"edupress/internal/view"
)

// AppHandler is a handler that reports failures by returning an error.
type AppHandler func(http.ResponseWriter, *http.Request) error

// Error converts handler errors and panics into HTML error pages. Errors that are not
// the caller's fault are logged and forwarded to the reporter.
func Error(log logger.Logger, v *view.View, reporter logger.Reporter) func(AppHandler) http.Handler {
	return func(next AppHandler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if !ok {
						err = fmt.Errorf("%v", rec)
					}
					log.Error(err, "Panic recovered")
					reporter.Report(err, map[string]string{"path": r.URL.Path})
					renderError(w, r, v, http.StatusInternalServerError)
				}
			}()

			err := next(w, r)
			if err == nil {
				return
			}

			status := http.StatusInternalServerError
			if appErr, ok := apperr.As(err); ok {
				status = appErr.Status()
			}
			if status >= http.StatusInternalServerError {
				log.With(map[string]interface{}{"path": r.URL.Path}).Error(err, "request failed")
				reporter.Report(err, map[string]string{"path": r.URL.Path})
			}
			renderError(w, r, v, status)
		})
	}
}

func renderError(w http.ResponseWriter, r *http.Request, v *view.View, status int) {
	data := map[string]interface{}{
		"Title":      http.StatusText(status),
		"StatusCode": status,
		"StatusText": http.StatusText(status),
		"Robots":     "noindex",
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := v.Render(w, r, "error.html", data); err != nil {
		fmt.Fprint(w, http.StatusText(status))
	}
}
