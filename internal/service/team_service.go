package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"edupress/internal/apperr"
	"edupress/internal/auth"
	"edupress/internal/data"
	"edupress/internal/logger"
)

// PolicyEnforcer decides whether a subject may perform act on obj.
type PolicyEnforcer interface {
	Enforce(rvals ...interface{}) (bool, error)
}

// TokenMinter signs bearer tokens for API keys.
type TokenMinter interface {
	Issue(subject string, scopes []string) (string, time.Time, error)
}

// Invitation is a pending team invite.
type Invitation struct {
	Email  string    `json:"email"`
	Role   data.Role `json:"role"`
	SentAt time.Time `json:"sentAt"`
}

// IssuedToken is a freshly minted API bearer token.
type IssuedToken struct {
	Token     string    `json:"token"`
	Role      data.Role `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Permission is one row of the role permission matrix.
type Permission struct {
	Action string             `json:"action"`
	Roles  map[data.Role]bool `json:"roles"`
}

// permissionChecks are the representative requests behind each matrix row.
var permissionChecks = []struct {
	action string
	path   string
	method string
}{
	{"read", "/api/admin/content", "GET"},
	{"write", "/api/admin/content", "POST"},
	{"delete", "/api/admin/content/any", "DELETE"},
	{"reports", "/api/admin/insights/goals", "GET"},
	{"seo", "/api/admin/seo/scores", "GET"},
	{"settings", "/api/admin/settings", "PUT"},
}

// TeamService manages the team roster and its credentials. The roster is held in memory.
type TeamService struct {
	mu       sync.Mutex
	users    []data.User
	logins   []data.LoginLog
	sessions []data.Session
	apiKeys  []data.APIKey

	enforcer PolicyEnforcer
	tokens   TokenMinter
	logger   logger.Logger
	now      func() time.Time
}

// NewTeamService creates a TeamService seeded with the initial team. tokens may be nil
// when no token secret is configured.
func NewTeamService(enforcer PolicyEnforcer, tokens TokenMinter, log logger.Logger) *TeamService {
	return &TeamService{
		users:    data.SeedUsers(),
		logins:   data.SeedLoginLogs(),
		sessions: data.SeedSessions(),
		apiKeys:  data.SeedAPIKeys(),
		enforcer: enforcer,
		tokens:   tokens,
		logger:   log,
		now:      time.Now,
	}
}

// Users returns the team members.
func (s *TeamService) Users(ctx context.Context) []data.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]data.User(nil), s.users...)
}

// LoginLogs returns the recent sign-in attempts.
func (s *TeamService) LoginLogs(ctx context.Context) []data.LoginLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]data.LoginLog(nil), s.logins...)
}

// Sessions returns the active sessions.
func (s *TeamService) Sessions(ctx context.Context) []data.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]data.Session(nil), s.sessions...)
}

// APIKeys returns the integration keys.
func (s *TeamService) APIKeys(ctx context.Context) []data.APIKey {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]data.APIKey(nil), s.apiKeys...)
}

// Invite validates and records an invitation. The roster is unchanged until the invitee signs in.
func (s *TeamService) Invite(ctx context.Context, email string, role data.Role) (*Invitation, error) {
	email = strings.TrimSpace(email)
	if !emailPattern.MatchString(email) {
		return nil, apperr.Validation("email", "a valid email address is required")
	}
	if role == "" {
		role = data.RoleViewer
	}
	if !role.Valid() {
		return nil, apperr.Validation("role", "role must be admin, editor, author or viewer")
	}

	inv := &Invitation{Email: email, Role: role, SentAt: s.now()}
	s.logger.With(map[string]interface{}{"email": email, "role": string(role)}).Info("team invitation sent")
	return inv, nil
}

// ToggleStatus flips an active user to inactive and any other user to active.
func (s *TeamService) ToggleStatus(ctx context.Context, id string) (*data.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		if s.users[i].Status == data.UserActive {
			s.users[i].Status = data.UserInactive
		} else {
			s.users[i].Status = data.UserActive
		}
		u := s.users[i]
		return &u, nil
	}
	return nil, apperr.NotFound("user", id)
}

// Permissions lists what each role may do according to the authorization policies.
func (s *TeamService) Permissions(ctx context.Context) ([]Permission, error) {
	rows := make([]Permission, 0, len(permissionChecks))
	for _, check := range permissionChecks {
		row := Permission{Action: check.action, Roles: make(map[data.Role]bool, len(data.Roles))}
		for _, role := range data.Roles {
			allowed, err := s.enforcer.Enforce(string(role), check.path, check.method)
			if err != nil {
				return nil, err
			}
			row.Roles[role] = allowed
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// MintToken signs a bearer token for the API key with id.
func (s *TeamService) MintToken(ctx context.Context, id string) (*IssuedToken, error) {
	if s.tokens == nil {
		return nil, apperr.External("token signing is not configured", nil)
	}

	s.mu.Lock()
	var key *data.APIKey
	for i := range s.apiKeys {
		if s.apiKeys[i].ID == id {
			k := s.apiKeys[i]
			key = &k
			break
		}
	}
	s.mu.Unlock()
	if key == nil {
		return nil, apperr.NotFound("api key", id)
	}

	token, expires, err := s.tokens.Issue("apikey:"+key.ID, key.Scopes)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.apiKeys {
		if s.apiKeys[i].ID == id {
			s.apiKeys[i].LastUsed = s.now().Format("2006-01-02")
		}
	}
	s.mu.Unlock()

	return &IssuedToken{Token: token, Role: auth.RoleForScopes(key.Scopes), ExpiresAt: expires}, nil
}
