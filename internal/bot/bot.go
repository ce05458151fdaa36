// Package bot wires the Discord client to the membership gating handlers.
package bot

import (
	"context"
	"time"

	"github.com/disgoorg/disgo"
	"github.com/disgoorg/disgo/bot"
	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/events"
	"github.com/disgoorg/disgo/gateway"
	"github.com/disgoorg/snowflake/v2"
	"go.uber.org/zap"

	"github.com/gatewarden/gatewarden/internal/bot/constants"
	"github.com/gatewarden/gatewarden/internal/bot/core/session"
	guildEvents "github.com/gatewarden/gatewarden/internal/bot/events"
	"github.com/gatewarden/gatewarden/internal/bot/handlers/membership"
	"github.com/gatewarden/gatewarden/internal/setup/config"
)

// Bot holds the Discord client and the membership handlers. It routes gateway
// events to the handlers and keeps panics in any handler from crashing the
// event loop.
type Bot struct {
	client     bot.Client
	membership *membership.Handler
	logger     *zap.Logger
}

// New initializes a Bot by constructing the session manager and membership
// handlers, then configuring the Discord client with the gateway intents and
// event listeners they need. The guild-members intent is required to receive
// member join events.
func New(cfg *config.Config, logger *zap.Logger) (*Bot, error) {
	b := &Bot{
		logger: logger,
	}

	guildHandler := guildEvents.NewGuildEventHandler(logger)

	client, err := disgo.New(cfg.Discord.Token,
		bot.WithGatewayConfigOpts(
			gateway.WithIntents(
				gateway.IntentGuilds,
				gateway.IntentGuildMembers,
				gateway.IntentDirectMessages,
			),
		),
		bot.WithEventListeners(&events.ListenerAdapter{
			OnGuildReady:                    guildHandler.OnGuildReady,
			OnGuildJoin:                     guildHandler.OnGuildJoin,
			OnGuildMemberJoin:               b.handleGuildMemberJoin,
			OnApplicationCommandInteraction: b.handleApplicationCommandInteraction,
			OnComponentInteraction:          b.handleComponentInteraction,
		}),
	)
	if err != nil {
		return nil, err
	}

	// The notifier needs the REST client, so handlers are built after it
	notifier := membership.NewNotifier(client.Rest(), snowflake.ID(cfg.Discord.LogChannelID), logger)
	sessionManager := session.NewManager(time.Now, logger)
	b.membership = membership.New(cfg.Roles, notifier, sessionManager, time.Now, logger)

	b.client = client

	return b, nil
}

// Start opens the gateway connection. Commands are registered per guild as
// guilds become available.
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting bot")
	return b.client.OpenGateway(ctx)
}

// Close gracefully shuts down the Discord gateway connection.
func (b *Bot) Close(ctx context.Context) {
	b.logger.Info("Closing bot")
	b.client.Close(ctx)
}

// handleGuildMemberJoin runs the join classifier for every new member.
func (b *Bot) handleGuildMemberJoin(event *events.GuildMemberJoin) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("Panic in member join handler", zap.Any("panic", r))
		}
	}()

	b.membership.OnMemberJoin(event)
}

// handleApplicationCommandInteraction processes slash commands by first
// deferring an ephemeral response, then routing to the matching handler in a
// goroutine so slow REST calls cannot block the gateway.
func (b *Bot) handleApplicationCommandInteraction(event *events.ApplicationCommandInteractionCreate) {
	go func() {
		// Defer response to prevent Discord timeout while processing
		if err := event.DeferCreateMessage(true); err != nil {
			b.logger.Error("Failed to defer create message", zap.Error(err))
			return
		}

		commandName := event.SlashCommandInteractionData().CommandName()

		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("Panic in application command interaction handler", zap.Any("panic", r))
				b.respondWithError(event, "Internal error. Please report this to an administrator.")
			}
			b.logger.Debug("Application command interaction handled",
				zap.String("command", commandName),
				zap.Duration("duration", time.Since(start)))
		}()

		switch commandName {
		case constants.ApproveCommandName:
			b.membership.HandleApprove(event)
		case constants.PendingCommandName:
			b.membership.HandlePending(event)
		default:
			b.respondWithError(event, "This command is not available.")
		}
	}()
}

// handleComponentInteraction processes navigation button clicks.
func (b *Bot) handleComponentInteraction(event *events.ComponentInteractionCreate) {
	go func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				b.logger.Error("Panic in component interaction handler", zap.Any("panic", r))
			}
			b.logger.Debug("Component interaction handled",
				zap.String("custom_id", event.Data.CustomID()),
				zap.Duration("duration", time.Since(start)))
		}()

		b.membership.HandleComponent(event)
	}()
}

// respondWithError replaces the deferred reply with an error message.
func (b *Bot) respondWithError(event *events.ApplicationCommandInteractionCreate, message string) {
	_, _ = event.Client().Rest().UpdateInteractionResponse(
		event.ApplicationID(), event.Token(),
		discord.NewMessageUpdateBuilder().SetContent(message).Build(),
	)
}
