package membership

import (
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/gatewarden/gatewarden/internal/bot/constants"
	"github.com/gatewarden/gatewarden/internal/bot/views/pending"
	"github.com/gatewarden/gatewarden/internal/gate"
	"go.uber.org/zap"
)

// HandlePending lists the members currently holding the pending role as a
// paginated ephemeral embed and opens a review session for its navigation
// buttons.
func (h *Handler) HandlePending(event *events.ApplicationCommandInteractionCreate) {
	if !h.authorized(event) {
		h.respond(event, gate.MissingPermissions)
		return
	}

	guildID := *event.GuildID()
	roles := h.guildRoles(event.Client(), guildID)

	pendingRole, found := gate.FindRole(roles, h.roles.Pending)
	if !found {
		h.respond(event, gate.PendingRoleMissing)
		return
	}

	mentions, err := h.pendingMentions(event.Client(), guildID, pendingRole.ID)
	if err != nil {
		h.logger.Error("Failed to enumerate guild members",
			zap.Uint64("guild_id", uint64(guildID)),
			zap.Error(err))
		h.respond(event, "Failed to fetch guild members. Please try again.")
		return
	}

	if len(mentions) == 0 {
		h.respond(event, gate.NoPendingMembers)
		return
	}

	pages := gate.Paginate(mentions, gate.PageSize)
	state := gate.NewPageState(pages, h.now())

	message, err := event.Client().Rest().UpdateInteractionResponse(
		event.ApplicationID(), event.Token(),
		pending.NewBuilder(state).Build().Build(),
	)
	if err != nil {
		h.logger.Error("Failed to render pending listing", zap.Error(err))
		return
	}

	h.sessions.Create(message.ID, pages)
}

// HandleComponent processes navigation clicks on a pending listing. Clicks on
// an expired session, an unknown session, or past either edge acknowledge the
// interaction without changing the view.
func (h *Handler) HandleComponent(event *events.ComponentInteractionCreate) {
	var (
		state   gate.PageState
		changed bool
	)

	switch event.Data.CustomID() {
	case constants.PendingPrevButtonCustomID:
		state, changed = h.sessions.Retreat(event.Message.ID)
	case constants.PendingNextButtonCustomID:
		state, changed = h.sessions.Advance(event.Message.ID)
	}

	if !changed {
		if err := event.DeferUpdateMessage(); err != nil {
			h.logger.Debug("Failed to acknowledge component interaction", zap.Error(err))
		}
		return
	}

	if err := event.UpdateMessage(pending.NewBuilder(state).Build().Build()); err != nil {
		h.logger.Error("Failed to update pending listing",
			zap.Uint64("message_id", uint64(event.Message.ID)),
			zap.Error(err))
	}
}

// pendingMentions collects the mention of every member holding the pending
// role, preserving the platform's member enumeration order.
func (h *Handler) pendingMentions(client bot.Client, guildID snowflake.ID, roleID snowflake.ID) ([]string, error) {
	var mentions []string

	var after snowflake.ID
	for {
		chunk, err := client.Rest().GetMembers(guildID, constants.MemberChunkSize, after)
		if err != nil {
			return nil, err
		}

		for _, member := range chunk {
			if gate.HasRole(member.RoleIDs, roleID) {
				mentions = append(mentions, member.User.Mention())
			}
		}

		// A short chunk is the last page
		if len(chunk) < constants.MemberChunkSize {
			break
		}

		after = chunk[len(chunk)-1].User.ID
	}

	return mentions, nil
}
