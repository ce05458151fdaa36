package membership_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/disgoorg/disgo/discord"
	"github.com/disgoorg/disgo/rest"
	"github.com/disgoorg/snowflake/v2"
	"github.com/gatewarden/gatewarden/internal/bot/handlers/membership"
	"github.com/gatewarden/gatewarden/internal/gate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const logChannelID = snowflake.ID(900)

// fakeSender records sent messages and fails sends according to its
// configuration.
type fakeSender struct {
	dmChannelErr error
	dmSendErr    error
	channelErr   error

	sent map[snowflake.ID][]string
}

func newFakeSender() *fakeSender {
	return &fakeSender{sent: make(map[snowflake.ID][]string)}
}

func (f *fakeSender) CreateMessage(channelID snowflake.ID, message discord.MessageCreate, _ ...rest.RequestOpt) (*discord.Message, error) {
	if channelID == logChannelID {
		if f.channelErr != nil {
			return nil, f.channelErr
		}
	} else if f.dmSendErr != nil {
		return nil, f.dmSendErr
	}

	f.sent[channelID] = append(f.sent[channelID], message.Content)
	return &discord.Message{}, nil
}

func (f *fakeSender) CreateDMChannel(snowflake.ID, ...rest.RequestOpt) (*discord.DMChannel, error) {
	if f.dmChannelErr != nil {
		return nil, f.dmChannelErr
	}
	return &discord.DMChannel{}, nil
}

func blockedErr() error {
	return &rest.Error{Response: &http.Response{StatusCode: http.StatusForbidden}}
}

func TestNotifyAdmins(t *testing.T) {
	t.Parallel()

	t.Run("sent", func(t *testing.T) {
		t.Parallel()

		sender := newFakeSender()
		n := membership.NewNotifier(sender, logChannelID, zap.NewNop())

		assert.Equal(t, gate.DeliverySent, n.NotifyAdmins("hello admins"))
		assert.Equal(t, []string{"hello admins"}, sender.sent[logChannelID])
	})

	t.Run("no channel configured", func(t *testing.T) {
		t.Parallel()

		sender := newFakeSender()
		n := membership.NewNotifier(sender, 0, zap.NewNop())

		assert.Equal(t, gate.DeliverySkipped, n.NotifyAdmins("hello admins"))
		assert.Empty(t, sender.sent)
	})

	t.Run("send failure degrades silently", func(t *testing.T) {
		t.Parallel()

		sender := newFakeSender()
		sender.channelErr = errors.New("channel deleted")
		n := membership.NewNotifier(sender, logChannelID, zap.NewNop())

		assert.Equal(t, gate.DeliveryFailed, n.NotifyAdmins("hello admins"))
	})
}

func TestDM(t *testing.T) {
	t.Parallel()

	userID := snowflake.ID(42)

	t.Run("sent", func(t *testing.T) {
		t.Parallel()

		sender := newFakeSender()
		n := membership.NewNotifier(sender, logChannelID, zap.NewNop())

		assert.Equal(t, gate.DeliverySent, n.DM(userID, "<@42>", "welcome"))
		assert.Empty(t, sender.sent[logChannelID], "no fallback notice on success")
	})

	t.Run("recipient blocks DMs", func(t *testing.T) {
		t.Parallel()

		sender := newFakeSender()
		sender.dmSendErr = blockedErr()
		n := membership.NewNotifier(sender, logChannelID, zap.NewNop())

		assert.Equal(t, gate.DeliveryBlocked, n.DM(userID, "<@42>", "welcome"))
		require.Len(t, sender.sent[logChannelID], 1, "exactly one fallback notice")
		assert.Equal(t, "Could not DM <@42> (DMs disabled).", sender.sent[logChannelID][0])
	})

	t.Run("DM channel creation fails", func(t *testing.T) {
		t.Parallel()

		sender := newFakeSender()
		sender.dmChannelErr = blockedErr()
		n := membership.NewNotifier(sender, logChannelID, zap.NewNop())

		assert.Equal(t, gate.DeliveryBlocked, n.DM(userID, "<@42>", "welcome"))
		require.Len(t, sender.sent[logChannelID], 1)
	})

	t.Run("transient failure still produces one fallback notice", func(t *testing.T) {
		t.Parallel()

		sender := newFakeSender()
		sender.dmSendErr = errors.New("gateway timeout")
		n := membership.NewNotifier(sender, logChannelID, zap.NewNop())

		assert.Equal(t, gate.DeliveryFailed, n.DM(userID, "<@42>", "welcome"))
		require.Len(t, sender.sent[logChannelID], 1)
	})
}
