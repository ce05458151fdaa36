// Package events contains handlers for guild lifecycle events.
package events

import (
	"fmt"

	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/snowflake/v2"
	"github.com/gatewarden/gatewarden/internal/bot/constants"
	"go.uber.org/zap"
)

// GuildEventHandler manages guild-related events for the bot.
type GuildEventHandler struct {
	logger *zap.Logger
}

// NewGuildEventHandler creates a new instance of the guild event handler.
func NewGuildEventHandler(logger *zap.Logger) *GuildEventHandler {
	return &GuildEventHandler{
		logger: logger.Named("guild_events"),
	}
}

// OnGuildReady registers commands for a guild that became available on startup.
func (h *GuildEventHandler) OnGuildReady(event *events.GuildReady) {
	if err := h.registerGuildCommands(event.Client(), event.Guild.ID); err != nil {
		h.logger.Error("Failed to register guild commands",
			zap.String("guildID", event.Guild.ID.String()),
			zap.Error(err))
	}
}

// OnGuildJoin handles the event when the bot joins a new guild.
func (h *GuildEventHandler) OnGuildJoin(event *events.GuildJoin) {
	h.logger.Info("Bot joined a new guild",
		zap.String("guildID", event.Guild.ID.String()),
		zap.String("guild_name", event.Guild.Name))

	if err := h.registerGuildCommands(event.Client(), event.Guild.ID); err != nil {
		h.logger.Error("Failed to register guild commands",
			zap.String("guildID", event.Guild.ID.String()),
			zap.Error(err))
	}
}

// registerGuildCommands registers the bot's commands for a specific guild.
func (h *GuildEventHandler) registerGuildCommands(client bot.Client, guildID snowflake.ID) error {
	_, err := client.Rest().SetGuildCommands(client.ApplicationID(), guildID,
		[]discord.ApplicationCommandCreate{
			discord.SlashCommandCreate{
				Name:        constants.ApproveCommandName,
				Description: "Approve a pending member",
				Options: []discord.ApplicationCommandOption{
					discord.ApplicationCommandOptionUser{
						Name:        constants.ApproveMemberOptionName,
						Description: "The member to approve",
						Required:    true,
					},
				},
			},
			discord.SlashCommandCreate{
				Name:        constants.PendingCommandName,
				Description: "List members pending verification",
			},
		},
	)
	if err != nil {
		return fmt.Errorf("failed to register guild commands: %w", err)
	}

	h.logger.Debug("Successfully registered guild commands",
		zap.String("guildID", guildID.String()))

	return nil
}
