//go:build unit

package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"edupress/internal/auth"
	"edupress/internal/data"
	"edupress/internal/logger"
	"edupress/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roleEnforcer allows each role the listed methods on any path.
type roleEnforcer map[string][]string

func (e roleEnforcer) Enforce(rvals ...interface{}) (bool, error) {
	role, method := rvals[0].(string), rvals[2].(string)
	for _, m := range e[role] {
		if m == method {
			return true, nil
		}
	}
	return false, nil
}

type fakeSessions struct {
	values map[string]string
}

var _ session.Manager = (*fakeSessions)(nil)

func (f *fakeSessions) LoadAndSave(next http.Handler) http.Handler { return next }
func (f *fakeSessions) Put(ctx context.Context, key string, val interface{}) {
	f.values[key] = val.(string)
}
func (f *fakeSessions) GetString(ctx context.Context, key string) string { return f.values[key] }
func (f *fakeSessions) PopString(ctx context.Context, key string) string {
	v := f.values[key]
	delete(f.values, key)
	return v
}
func (f *fakeSessions) RenewToken(ctx context.Context) error { return nil }
func (f *fakeSessions) Destroy(ctx context.Context) error {
	f.values = map[string]string{}
	return nil
}
func (f *fakeSessions) Remove(ctx context.Context, key string) { delete(f.values, key) }

func TestAuthorizer(t *testing.T) {
	issuer, err := auth.NewTokenIssuer("secret", time.Hour)
	require.NoError(t, err)
	writerToken, _, err := issuer.Issue("apikey:2", []string{"write:posts"})
	require.NoError(t, err)

	enforcer := roleEnforcer{
		"viewer": {"GET"},
		"author": {"GET", "POST"},
		"admin":  {"GET", "POST", "DELETE"},
	}

	var seen *UserInfo
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetUserInfo(r.Context())
	})

	cases := []struct {
		name     string
		method   string
		bearer   string
		session  map[string]string
		devRole  data.Role
		wantCode int
		wantRole data.Role
	}{
		{name: "anonymous denied", method: "GET", wantCode: http.StatusUnauthorized},
		{name: "dev role", method: "GET", devRole: data.RoleViewer, wantCode: http.StatusOK, wantRole: data.RoleViewer},
		{name: "session role", method: "DELETE", session: map[string]string{session.KeyRole: "admin", session.KeySubject: "u1"}, devRole: data.RoleViewer, wantCode: http.StatusOK, wantRole: data.RoleAdmin},
		{name: "session role forbidden", method: "DELETE", session: map[string]string{session.KeyRole: "viewer"}, wantCode: http.StatusForbidden},
		{name: "bearer token wins", method: "POST", bearer: writerToken, session: map[string]string{session.KeyRole: "viewer"}, wantCode: http.StatusOK, wantRole: data.RoleAuthor},
		{name: "bad bearer token", method: "GET", bearer: "garbage", devRole: data.RoleAdmin, wantCode: http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = nil
			sessions := &fakeSessions{values: map[string]string{}}
			for k, v := range tc.session {
				sessions.values[k] = v
			}
			mw := Authorizer(AuthorizerOptions{
				Enforcer: enforcer,
				Sessions: sessions,
				Tokens:   issuer,
				DevRole:  tc.devRole,
				Logger:   logger.Nop(),
			})

			req := httptest.NewRequest(tc.method, "/api/admin/content", nil)
			if tc.bearer != "" {
				req.Header.Set("Authorization", "Bearer "+tc.bearer)
			}
			rr := httptest.NewRecorder()
			mw(next).ServeHTTP(rr, req)

			assert.Equal(t, tc.wantCode, rr.Code)
			if tc.wantCode == http.StatusOK {
				require.NotNil(t, seen)
				assert.Equal(t, tc.wantRole, seen.Role)
			} else {
				assert.Nil(t, seen)
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			}
		})
	}
}

func TestGetUserInfoDefaultsToAnonymous(t *testing.T) {
	info := GetUserInfo(context.Background())
	assert.Equal(t, data.RoleAnonymous, info.Role)
}
