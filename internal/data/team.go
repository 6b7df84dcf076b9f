package data

// Role is a team member's access level. Each role inherits everything the previous one may do:
// viewer, author, editor, admin.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleViewer    Role = "viewer"
	RoleAuthor    Role = "author"
	RoleEditor    Role = "editor"
	RoleAdmin     Role = "admin"
)

// Roles lists the assignable roles from most to least privileged.
var Roles = []Role{RoleAdmin, RoleEditor, RoleAuthor, RoleViewer}

// Valid reports whether r is an assignable role.
func (r Role) Valid() bool {
	for _, role := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User statuses.
const (
	UserActive   = "active"
	UserInactive = "inactive"
	UserInvited  = "invited"
)

// User is a team member.
type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             Role   `json:"role"`
	Status           string `json:"status"`
	LastLogin        string `json:"lastLogin"`
	Avatar           string `json:"avatar,omitempty"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

// LoginLog records a sign-in attempt.
type LoginLog struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	IP        string `json:"ip"`
	Device    string `json:"device"`
	Location  string `json:"location"`
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// Session is an active sign-in of a team member.
type Session struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	Device     string `json:"device"`
	IP         string `json:"ip"`
	LastActive string `json:"lastActive"`
	IsCurrent  bool   `json:"isCurrent"`
}

// APIKey is a named credential for integrations.
type APIKey struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Prefix   string   `json:"prefix"`
	Created  string   `json:"created"`
	LastUsed string   `json:"lastUsed"`
	Scopes   []string `json:"scopes"`
}

// SeedUsers returns the initial team.
func SeedUsers() []User {
	return []User{
		{ID: "1", Name: "Dilek Öğretmen", Email: "dilek@ornek.com", Role: RoleAdmin, Status: UserActive, LastLogin: "2024-03-25T09:30:00", TwoFactorEnabled: true},
		{ID: "2", Name: "Mehmet Yılmaz", Email: "mehmet@ornek.com", Role: RoleEditor, Status: UserActive, LastLogin: "2024-03-24T14:20:00"},
		{ID: "3", Name: "Ayşe Demir", Email: "ayse@ornek.com", Role: RoleAuthor, Status: UserActive, LastLogin: "2024-03-23T10:15:00"},
		{ID: "4", Name: "Fatma Kaya", Email: "fatma@ornek.com", Role: RoleAuthor, Status: UserInactive, LastLogin: "2024-02-15T16:45:00"},
		{ID: "5", Name: "Ahmet Can", Email: "ahmet@stajyer.com", Role: RoleViewer, Status: UserActive, LastLogin: "2024-03-25T11:00:00"},
		{ID: "6", Name: "Zeynep Su", Email: "zeynep@misafir.com", Role: RoleViewer, Status: UserInvited},
	}
}

// SeedLoginLogs returns the recent sign-in history.
func SeedLoginLogs() []LoginLog {
	return []LoginLog{
		{ID: "1", UserID: "1", UserName: "Dilek Öğretmen", IP: "192.168.1.1", Device: "MacBook Pro / Chrome", Location: "İstanbul, TR", Timestamp: "2024-03-25T09:30:00", Status: "success"},
		{ID: "2", UserID: "2", UserName: "Mehmet Yılmaz", IP: "85.100.x.x", Device: "Windows 10 / Edge", Location: "Ankara, TR", Timestamp: "2024-03-24T14:20:00", Status: "success"},
		{ID: "3", UserID: "1", UserName: "Dilek Öğretmen", IP: "192.168.1.1", Device: "iPhone 13 / Safari", Location: "İstanbul, TR", Timestamp: "2024-03-24T08:15:00", Status: "success"},
		{ID: "4", UserID: "?", UserName: "unknown@admin.com", IP: "45.33.x.x", Device: "Linux / Firefox", Location: "Frankfurt, DE", Timestamp: "2024-03-23T03:40:00", Status: "failed"},
		{ID: "5", UserID: "3", UserName: "Ayşe Demir", IP: "176.23.x.x", Device: "Android / Chrome", Location: "İzmir, TR", Timestamp: "2024-03-23T10:15:00", Status: "success"},
	}
}

// SeedSessions returns the active sessions of the site owner.
func SeedSessions() []Session {
	return []Session{
		{ID: "s1", UserID: "1", Device: "MacBook Pro / Chrome", IP: "192.168.1.1", LastActive: "2 dk önce", IsCurrent: true},
		{ID: "s2", UserID: "1", Device: "iPhone 13 / Safari", IP: "192.168.1.1", LastActive: "1 gün önce"},
	}
}

// SeedAPIKeys returns the integration keys.
func SeedAPIKeys() []APIKey {
	return []APIKey{
		{ID: "1", Name: "Mobil Uygulama", Prefix: "edupress_live_", Created: "2023-11-01", LastUsed: "2024-03-25", Scopes: []string{"read:posts", "read:categories"}},
		{ID: "2", Name: "Zapier Entegrasyonu", Prefix: "edupress_zap_", Created: "2024-01-15", LastUsed: "2024-03-20", Scopes: []string{"write:posts", "read:analytics"}},
	}
}
