// Package pending builds the paginated pending members listing.
package pending

import (
	"strings"

	"github.com/disgoorg/disgo/discord"
	"github.com/gatewarden/gatewarden/internal/bot/constants"
	"github.com/gatewarden/gatewarden/internal/gate"
)

// Builder creates the visual layout for one page of the pending listing.
// It only reads the paging state; all transition logic lives in gate.
type Builder struct {
	state gate.PageState
}

// NewBuilder creates a pending listing builder for the given paging state.
func NewBuilder(state gate.PageState) *Builder {
	return &Builder{state: state}
}

// Build creates the message content for the displayed page. The same layout is
// used for the initial reply and for in-place edits on navigation.
func (b *Builder) Build() *discord.MessageUpdateBuilder {
	embed := discord.NewEmbedBuilder().
		SetTitle(gate.PageTitle(b.state.Index, b.state.Total())).
		SetDescription(strings.Join(b.state.Current(), "\n")).
		SetColor(constants.PendingEmbedColor).
		Build()

	return discord.NewMessageUpdateBuilder().
		SetEmbeds(embed).
		AddActionRow(
			discord.NewSecondaryButton("Previous", constants.PendingPrevButtonCustomID),
			discord.NewSecondaryButton("Next", constants.PendingNextButtonCustomID),
		)
}
