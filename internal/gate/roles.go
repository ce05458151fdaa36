package gate

import (
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/snowflake/v2"
)

// FindRole resolves a role by name against a guild's role list. Resolution
// happens at use time so a rename on the guild takes effect immediately.
func FindRole(roles []discord.Role, name string) (discord.Role, bool) {
	for _, role := range roles {
		if role.Name == name {
			return role, true
		}
	}
	return discord.Role{}, false
}

// HasRole reports whether roleID is present in a member's role set.
func HasRole(roleIDs []snowflake.ID, roleID snowflake.ID) bool {
	for _, id := range roleIDs {
		if id == roleID {
			return true
		}
	}
	return false
}

// ApprovalPlan is the set of role mutations one approval needs. Adding an
// already-held role is a platform no-op, so AddVerified only depends on the
// role resolving; RemovePending additionally requires the target to hold it.
type ApprovalPlan struct {
	AddVerified   bool
	RemovePending bool
}

// PlanApproval decides the role mutations for approving a member. Unresolved
// roles are skipped rather than treated as errors, and re-approving an
// already-verified member yields the same final role state.
func PlanApproval(memberRoleIDs []snowflake.ID, pendingID snowflake.ID, verifiedFound, pendingFound bool) ApprovalPlan {
	return ApprovalPlan{
		AddVerified:   verifiedFound,
		RemovePending: pendingFound && HasRole(memberRoleIDs, pendingID),
	}
}
