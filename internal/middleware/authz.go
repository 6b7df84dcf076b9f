package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	"edupress/internal/auth"
	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/session"
)

// Enforcer decides whether a subject may perform act on obj.
type Enforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// TokenVerifier verifies API bearer tokens.
type TokenVerifier interface {
	Parse(raw string) (*auth.TokenClaims, error)
}

// AuthorizerOptions configures Authorizer. Tokens may be nil to disable bearer tokens.
// DevRole is granted to requests carrying neither a token nor a session.
type AuthorizerOptions struct {
	Enforcer Enforcer
	Sessions session.Manager
	Tokens   TokenVerifier
	DevRole  data.Role
	Logger   logger.Logger
}

// Authorizer resolves the caller's role and checks it against the policies with Casbin.
// A bearer token wins over the session, which wins over the development role.
func Authorizer(opts AuthorizerOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userInfo, ok := resolveUser(r, opts)
			if !ok {
				writeJSONError(w, http.StatusUnauthorized, "invalid bearer token")
				return
			}
			r = r.WithContext(SetUserInfo(r.Context(), userInfo))

			allowed, err := opts.Enforcer.Enforce(string(userInfo.Role), r.URL.Path, r.Method)
			if err != nil {
				opts.Logger.Error(err, "authorization check failed")
				writeJSONError(w, http.StatusInternalServerError, "authorization error")
				return
			}

			if !allowed {
				if userInfo.Role == data.RoleAnonymous {
					writeJSONError(w, http.StatusUnauthorized, "authentication required")
					return
				}
				writeJSONError(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func resolveUser(r *http.Request, opts AuthorizerOptions) (*UserInfo, bool) {
	if header := r.Header.Get("Authorization"); strings.HasPrefix(header, "Bearer ") && opts.Tokens != nil {
		claims, err := opts.Tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return nil, false
		}
		return &UserInfo{Subject: claims.Subject, Role: claims.Role()}, true
	}

	if opts.Sessions != nil {
		if role := data.Role(opts.Sessions.GetString(r.Context(), session.KeyRole)); role.Valid() {
			return &UserInfo{Subject: opts.Sessions.GetString(r.Context(), session.KeySubject), Role: role}, true
		}
	}

	if opts.DevRole.Valid() {
		return &UserInfo{Subject: "dev", Role: opts.DevRole}, true
	}
	return &UserInfo{Subject: string(data.RoleAnonymous), Role: data.RoleAnonymous}, true
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
