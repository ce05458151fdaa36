package membership

import (
	"github.com/disgoorg/disgo/events"
	"github.com/gatewarden/gatewarden/internal/bot/constants"
	"github.com/gatewarden/gatewarden/internal/gate"
	"go.uber.org/zap"
)

// HandleApprove promotes the targeted member from pending to verified. The
// operation is idempotent: verified is added regardless of prior state and
// pending is only removed when the target holds it.
func (h *Handler) HandleApprove(event *events.ApplicationCommandInteractionCreate) {
	if !h.authorized(event) {
		h.respond(event, gate.MissingPermissions)
		return
	}

	target, ok := event.SlashCommandInteractionData().OptMember(constants.ApproveMemberOptionName)
	if !ok {
		h.respond(event, gate.MissingTargetMember)
		return
	}

	guildID := *event.GuildID()
	roles := h.guildRoles(event.Client(), guildID)
	verifiedRole, verifiedFound := gate.FindRole(roles, h.roles.Verified)
	pendingRole, pendingFound := gate.FindRole(roles, h.roles.Pending)

	plan := gate.PlanApproval(target.RoleIDs, pendingRole.ID, verifiedFound, pendingFound)

	if plan.AddVerified {
		err := event.Client().Rest().AddMemberRole(guildID, target.User.ID, verifiedRole.ID)
		if err != nil {
			h.logger.Warn("Failed to add verified role",
				zap.Uint64("user_id", uint64(target.User.ID)),
				zap.Error(err))
		}
	} else {
		h.logger.Warn("Verified role unavailable on guild, skipping assignment",
			zap.String("role", h.roles.Verified),
			zap.Uint64("guild_id", uint64(guildID)))
	}

	if plan.RemovePending {
		err := event.Client().Rest().RemoveMemberRole(guildID, target.User.ID, pendingRole.ID)
		if err != nil {
			h.logger.Warn("Failed to remove pending role",
				zap.Uint64("user_id", uint64(target.User.ID)),
				zap.Error(err))
		}
	}

	mention := target.User.Mention()
	h.respond(event, gate.ApprovalReply(mention))
	h.notifier.NotifyAdmins(gate.ApprovedNotice(mention, event.User().Mention()))
	h.notifier.DM(target.User.ID, mention, gate.ApprovedDM)
}
