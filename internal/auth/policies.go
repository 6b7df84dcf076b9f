package auth

import (
	"fmt"

	"edupress/internal/data"
	"edupress/internal/logger"

	"github.com/casbin/casbin/v2"
)

const adminPrefix = "/api/admin"

// resource expands to the collection path and every path below it.
func resource(path string) []string {
	return []string{adminPrefix + path, adminPrefix + path + "/*"}
}

// rolePolicies lists what each role may do on top of the role it inherits from.
var rolePolicies = map[data.Role][]struct {
	paths   []string
	methods []string
}{
	data.RoleViewer: {
		{resource("/content"), []string{"GET"}},
		{resource("/categories"), []string{"GET"}},
		{resource("/tags"), []string{"GET"}},
		{resource("/media"), []string{"GET"}},
		{resource("/stats"), []string{"GET"}},
	},
	data.RoleAuthor: {
		{resource("/content"), []string{"POST", "PUT"}},
		{resource("/categories"), []string{"POST", "PUT"}},
		{resource("/tags"), []string{"POST", "PUT"}},
		{resource("/media"), []string{"POST"}},
		{resource("/assistant"), []string{"POST"}},
	},
	data.RoleEditor: {
		{resource("/content"), []string{"DELETE"}},
		{resource("/categories"), []string{"DELETE"}},
		{resource("/tags"), []string{"DELETE"}},
		{resource("/media"), []string{"DELETE"}},
		{resource("/seo"), []string{"GET", "POST"}},
		{resource("/insights"), []string{"GET"}},
	},
	data.RoleAdmin: {
		{resource("/settings"), []string{"GET", "PUT"}},
		{resource("/team"), []string{"GET", "POST"}},
	},
}

// roleInheritance maps each role to the role whose permissions it includes.
var roleInheritance = [][2]data.Role{
	{data.RoleViewer, data.RoleAnonymous},
	{data.RoleAuthor, data.RoleViewer},
	{data.RoleEditor, data.RoleAuthor},
	{data.RoleAdmin, data.RoleEditor},
}

// SeedDefaultPolicies ensures that the application has a baseline set of authorization rules.
// It checks if each default policy exists before adding it, making the operation idempotent
// and safe to run on every application start.
func SeedDefaultPolicies(e casbin.IEnforcer, log logger.Logger) {
	log.Info("Seeding default authorization policies...")

	for role, grants := range rolePolicies {
		for _, grant := range grants {
			for _, path := range grant.paths {
				for _, method := range grant.methods {
					p := []string{string(role), path, method}
					if has, _ := e.HasPolicy(p); has {
						continue
					}
					if _, err := e.AddPolicy(p); err != nil {
						log.Error(err, fmt.Sprintf("Failed to add policy %v", p))
					}
				}
			}
		}
	}

	for _, pair := range roleInheritance {
		role, parent := string(pair[0]), string(pair[1])
		if has, _ := e.HasRoleForUser(role, parent); has {
			continue
		}
		if _, err := e.AddRoleForUser(role, parent); err != nil {
			log.Error(err, fmt.Sprintf("Failed to add role '%s' -> '%s'", role, parent))
		}
	}
	log.Info("Policy seeding complete.")
}
