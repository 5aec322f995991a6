package commands

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

var ErrNoApplicationID = errors.New("application id is required to register commands")

// Activities that can be launched through an invite. Discord does not list
// them through the API, ids are those published by the activities team.
var Activities = []structs.AppCmdOptionChoice{
	{Name: "Watch Together", Value: "880218394199220334"},
	{Name: "Poker Night", Value: "755827207812677713"},
	{Name: "Chess In The Park", Value: "832012774040141894"},
	{Name: "Checkers In The Park", Value: "832013003968348200"},
	{Name: "Letter League", Value: "879863686565621790"},
	{Name: "SpellCast", Value: "852509694341283871"},
	{Name: "Sketch Heads", Value: "902271654783242291"},
	{Name: "Blazing 8s", Value: "832025144389533716"},
	{Name: "Land-io", Value: "903769130790969345"},
	{Name: "Putt Party", Value: "945737671223947305"},
	{Name: "Bobble League", Value: "947957217959759964"},
	{Name: "Know What I Meme", Value: "950505761862189096"},
	{Name: "Ask Away", Value: "976052223358406656"},
}

// Definitions returns every command served by the webhook. Option order
// matters, the activities handler reads them by position.
func Definitions() []structs.AppCmd {
	return []structs.AppCmd{
		{
			Name:        "activities",
			Description: "Start an activity in a voice channel",
			Type:        structs.AppCmdTypeChatInput,
			Options: []structs.AppCmdOption{
				{
					Type:        structs.AppCmdOptionTypeString,
					Name:        "activity",
					Description: "Activity to launch",
					Required:    true,
					Choices:     Activities,
				},
				{
					Type:         structs.AppCmdOptionTypeChannel,
					Name:         "channel",
					Description:  "Voice channel to launch it in",
					Required:     true,
					ChannelTypes: []structs.ChannelType{structs.ChannelTypeGuildVoice},
				},
			},
			IntegrationTypes: []structs.AppCmdIntegrationType{structs.AppIntegrationTypeGuildInstall},
			Contexts:         []structs.AppCmdInteractionCtxType{structs.AppInteractionContextTypeGuild},
		},
	}
}

// Application commands API.
// Source: https://discord.com/developers/docs/interactions/application-commands
type ApplicationCommandAPI struct {
	rest rest.RESTClient
}

func New(rest rest.RESTClient) *ApplicationCommandAPI {
	return &ApplicationCommandAPI{rest: rest}
}

func (a *ApplicationCommandAPI) globalCommandsRoute(applicationID string) (string, error) {
	u, err := url.Parse(a.rest.URL())
	if err != nil {
		return "", err
	}
	gcPath := fmt.Sprintf("/applications/%s/commands", url.PathEscape(applicationID))
	actualPath, err := url.JoinPath(u.Path, gcPath)
	if err != nil {
		return "", err
	}
	gcURL := url.URL{
		Scheme: u.Scheme,
		Host:   u.Host,
		Path:   actualPath,
	}
	return gcURL.String(), nil
}

// BulkOverwrite replaces every global command of the application with cmds.
func (a *ApplicationCommandAPI) BulkOverwrite(ctx context.Context, applicationID string, cmds []structs.AppCmd) ([]structs.AppCmd, error) {
	if applicationID == "" {
		return nil, ErrNoApplicationID
	}
	gcURL, err := a.globalCommandsRoute(applicationID)
	if err != nil {
		return nil, err
	}
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(cmds); err != nil {
		return nil, err
	}
	res, err := a.rest.Put(ctx, gcURL, buf, nil)
	if err != nil {
		return nil, err
	}
	registered := []structs.AppCmd{}
	if err := rest.DecodeJSON(res, &registered); err != nil {
		return nil, err
	}
	return registered, nil
}
