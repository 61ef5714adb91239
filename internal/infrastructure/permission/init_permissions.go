package permission

import (
	"fmt"

	"datarequests/internal/application/datarequest/authz"
)

// InitDataRequestPermissions seeds the default role rules. Rules that already
// exist are left alone, so this runs on every start.
func (e *Enforcer) InitDataRequestPermissions() error {
	for _, p := range authz.DefaultPolicies() {
		if err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w", p[0], p[1], p[2], err)
		}
	}

	for _, g := range authz.RoleInheritance() {
		if err := e.AddRoleInheritance(g[0], g[1]); err != nil {
			return err
		}
	}

	e.logger.Info("data request permissions initialized")
	return nil
}
