package interactions

import (
	"context"
	"fmt"

	"github.com/disgoorg/snowflake/v2"
	"github.com/gofiber/fiber/v3/log"
	"github.com/hendrywilliam/launchpad/src/channels"
	"github.com/hendrywilliam/launchpad/src/structs"
)

const ActivitiesPrefix = "activities"

type InviteCreator interface {
	CreateInvite(ctx context.Context, channelID string, invite structs.ChannelInviteRequest) (*structs.ChannelInviteResponse, error)
}

// snowflakeOption reads options[idx] as a snowflake string.
func snowflakeOption(options []structs.InteractionCommandOption, idx int, name string) (string, error) {
	if idx >= len(options) {
		return "", fmt.Errorf("%w: %s", ErrMissingOption, name)
	}
	value, ok := options[idx].StringValue()
	if !ok || value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingOption, name)
	}
	id, err := snowflake.Parse(value)
	if err != nil {
		return "", fmt.Errorf("%w: %s is not a snowflake: %q", ErrMissingOption, name, value)
	}
	return id.String(), nil
}

func inviteMessage(invite *structs.ChannelInviteResponse, channelID string) string {
	return fmt.Sprintf("[Click to open **%s** in <#%s>](https://discord.gg/%s)", invite.TargetApplication.Name, channelID, invite.Code)
}

// ActivitiesHandler creates an activity invite for the voice channel given as
// the second option, launching the application given as the first.
func ActivitiesHandler(invites InviteCreator) CommandHandler {
	return func(ctx context.Context, i *structs.Interaction) (*structs.InteractionResponse, error) {
		activityID, err := snowflakeOption(i.Data.Options, 0, "activity")
		if err != nil {
			return nil, err
		}
		channelID, err := snowflakeOption(i.Data.Options, 1, "channel")
		if err != nil {
			return nil, err
		}
		invite, err := invites.CreateInvite(ctx, channelID, channels.NewActivityInvite(activityID))
		if err != nil {
			log.Errorw("failed to create activity invite", "channel_id", channelID, "activity_id", activityID, "error", err)
			return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		log.Infow("activity invite created",
			"channel_id", channelID,
			"application", invite.TargetApplication.Name,
			"invoker", i.InvokerID(),
		)
		return structs.MessageResponse(inviteMessage(invite, channelID)), nil
	}
}
