package membership

import (
	"github.com/disgoorg/disgo/events"
	"github.com/gatewarden/gatewarden/internal/gate"
	"go.uber.org/zap"
)

// OnMemberJoin classifies a newly joined member by account age, assigns the
// matching gating role, and sends the admin notice and welcome DM. Every side
// effect is best-effort; nothing here can fail the event loop.
func (h *Handler) OnMemberJoin(event *events.GuildMemberJoin) {
	member := event.Member
	classification := gate.Classify(member.User.ID.Time(), h.now())

	h.logger.Info("Member joined",
		zap.Uint64("guild_id", uint64(event.GuildID)),
		zap.Uint64("user_id", uint64(member.User.ID)),
		zap.Int("account_age_days", classification.AgeDays),
		zap.String("outcome", classification.Outcome.String()))

	roleName := h.roles.Pending
	if classification.Outcome == gate.OutcomeFlagged {
		roleName = h.roles.Flagged
	}

	roles := h.guildRoles(event.Client(), event.GuildID)
	if role, ok := gate.FindRole(roles, roleName); ok {
		err := event.Client().Rest().AddMemberRole(event.GuildID, member.User.ID, role.ID)
		if err != nil {
			h.logger.Warn("Failed to assign role",
				zap.String("role", roleName),
				zap.Uint64("user_id", uint64(member.User.ID)),
				zap.Error(err))
		}
	} else {
		h.logger.Warn("Role unavailable on guild, skipping assignment",
			zap.String("role", roleName),
			zap.Uint64("guild_id", uint64(event.GuildID)))
	}

	mention := member.User.Mention()
	h.notifier.NotifyAdmins(classification.AdminNotice(mention))
	h.notifier.DM(member.User.ID, mention, classification.WelcomeDM())
}
