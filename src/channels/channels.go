package channels

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/hendrywilliam/launchpad/src/rest"
	"github.com/hendrywilliam/launchpad/src/structs"
)

var ErrMalformedInvite = errors.New("invite response has no code")

// Channels API.
// Source: https://discord.com/developers/docs/resources/channel
type ChannelAPI struct {
	rest rest.RESTClient
}

func New(rest rest.RESTClient) *ChannelAPI {
	return &ChannelAPI{
		rest: rest,
	}
}

// Routes
func (c *ChannelAPI) createInviteRoute(channelID string) (string, error) {
	u, err := url.Parse(c.rest.URL())
	if err != nil {
		return "", err
	}
	ciPath := fmt.Sprintf("/channels/%s/invites", url.PathEscape(channelID))
	actualPath, err := url.JoinPath(u.Path, ciPath)
	if err != nil {
		return "", err
	}
	ciURL := url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   actualPath,
	}
	return ciURL.String(), nil
}

// NewActivityInvite describes an invite that never expires, has no use limit,
// grants permanent membership and launches the given embedded application.
func NewActivityInvite(activityID string) structs.ChannelInviteRequest {
	return structs.ChannelInviteRequest{
		MaxAge:              0,
		MaxUses:             0,
		Temporary:           false,
		Unique:              false,
		TargetType:          structs.InviteTargetTypeEmbeddedApplication,
		TargetApplicationID: activityID,
	}
}

func (c *ChannelAPI) CreateInvite(ctx context.Context, channelID string, invite structs.ChannelInviteRequest) (*structs.ChannelInviteResponse, error) {
	ciURL, err := c.createInviteRoute(channelID)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(invite); err != nil {
		return nil, err
	}
	res, err := c.rest.Post(ctx, ciURL, buf, nil)
	if err != nil {
		return nil, err
	}
	out := &structs.ChannelInviteResponse{}
	if err := rest.DecodeJSON(res, out); err != nil {
		return nil, err
	}
	if out.Code == "" {
		return nil, ErrMalformedInvite
	}
	return out, nil
}
