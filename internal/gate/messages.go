package gate

import "fmt"

// Fixed replies used by the approval and listing flows. The wording is relied
// on by existing deployments, so it must not drift.
const (
	ApprovedDM          = "Your membership has been approved. Welcome!"
	PendingRoleMissing  = "Pending role not found."
	NoPendingMembers    = "There are currently no members pending verification."
	MissingPermissions  = "You need the Manage Roles permission to use this command."
	MissingTargetMember = "Could not resolve the member to approve."
)

// ApprovalReply is the ephemeral confirmation shown to the approving admin.
func ApprovalReply(mention string) string {
	return fmt.Sprintf("%s has been approved and verified.", mention)
}

// ApprovedNotice is the administrator-channel record of an approval.
func ApprovedNotice(mention, approver string) string {
	return fmt.Sprintf("%s was approved by %s.", mention, approver)
}

// DMFallbackNotice is posted to the administrator channel when a member cannot
// be reached by direct message.
func DMFallbackNotice(mention string) string {
	return fmt.Sprintf("Could not DM %s (DMs disabled).", mention)
}

// PageTitle renders the pending listing title for a zero-based page index.
func PageTitle(index, total int) string {
	return fmt.Sprintf("Pending Members (Page %d/%d)", index+1, total)
}
