package structs

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-object-interaction-type
type InteractionType = uint8

const (
	InteractionTypePing                           InteractionType = 1
	InteractionTypeApplicationCommand             InteractionType = 2
	InteractionTypeMessageComponent               InteractionType = 3
	InteractionTypeApplicationCommandAutocomplete InteractionType = 4
	InteractionTypeModalSubmit                    InteractionType = 5
)

// https://discord.com/developers/docs/interactions/application-commands#application-command-object-application-command-option-type
type AppCmdOptionType = uint8

const (
	AppCmdOptionTypeSubCommand      AppCmdOptionType = 1
	AppCmdOptionTypeSubCommandGroup AppCmdOptionType = 2
	AppCmdOptionTypeString          AppCmdOptionType = 3
	AppCmdOptionTypeInteger         AppCmdOptionType = 4
	AppCmdOptionTypeBoolean         AppCmdOptionType = 5
	AppCmdOptionTypeUser            AppCmdOptionType = 6
	AppCmdOptionTypeChannel         AppCmdOptionType = 7
	AppCmdOptionTypeRole            AppCmdOptionType = 8
	AppCmdOptionTypeMentionable     AppCmdOptionType = 9
	AppCmdOptionTypeNumber          AppCmdOptionType = 10
	AppCmdOptionTypeAttachment      AppCmdOptionType = 11
)

// Value holds a string, integer, double or boolean.
type InteractionCommandOption struct {
	Name    string                     `json:"name"`
	Type    AppCmdOptionType           `json:"type"`
	Value   json.RawMessage            `json:"value,omitempty"`
	Options []InteractionCommandOption `json:"options,omitempty"`
	Focused bool                       `json:"focused,omitempty"`
}

// StringValue renders the option value as a string. Snowflakes arrive as JSON
// strings, integers and doubles as numbers. ok is false when no value is present.
func (o InteractionCommandOption) StringValue() (string, bool) {
	raw := bytes.TrimSpace(o.Value)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return strconv.FormatBool(b), true
	}
	return "", false
}

// https://discord.com/developers/docs/interactions/receiving-and-responding#interaction-object-interaction-data
type InteractionData struct {
	ID       string                     `json:"id"`
	Name     string                     `json:"name"`
	Type     AppCmdType                 `json:"type"`
	Resolved interface{}                `json:"resolved,omitempty"`  // unimplemented.
	Options  []InteractionCommandOption `json:"options,omitempty"`   // only present for commands with arguments.
	GuildID  string                     `json:"guild_id,omitempty"`  // unimplemented.
	TargetID string                     `json:"target_id,omitempty"` // unimplemented.
}

type User struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name,omitempty"`
}

type Member struct {
	User        *User    `json:"user,omitempty"`
	Nick        string   `json:"nick,omitempty"`
	Roles       []string `json:"roles"`
	Permissions string   `json:"permissions"`
}

type Interaction struct {
	ID             string           `json:"id"`
	ApplicationID  string           `json:"application_id"`
	Type           InteractionType  `json:"type"`
	Data           *InteractionData `json:"data,omitempty"`
	GuildID        string           `json:"guild_id,omitempty"`
	ChannelID      string           `json:"channel_id,omitempty"`
	Member         *Member          `json:"member,omitempty"`
	User           *User            `json:"user,omitempty"`
	Token          string           `json:"token"`
	Version        uint             `json:"version"`
	Message        interface{}      `json:"message,omitempty"` // unimplemented.
	AppPermissions string           `json:"app_permissions,omitempty"`
	Locale         string           `json:"locale,omitempty"` // absent on PING.
	GuildLocale    string           `json:"guild_locale,omitempty"`
}

// InvokerID returns the id of the user who triggered the interaction. Member is
// set in guilds, User in DMs.
func (i *Interaction) InvokerID() string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

type InteractionResponseType = uint8

const (
	InteractionResponseTypePong                                 InteractionResponseType = 1
	InteractionResponseTypeChannelMessageWithSource             InteractionResponseType = 4
	InteractionResponseTypeDeferredChannelMessageWithSource     InteractionResponseType = 5
	InteractionResponseTypeDeferredUpdateMessage                InteractionResponseType = 6
	InteractionResponseTypeUpdateMessage                        InteractionResponseType = 7
	InteractionResponseTypeApplicationCommandAutoCompleteResult InteractionResponseType = 8
	InteractionResponseTypeModal                                InteractionResponseType = 9
)

type InteractionResponseDataMessage struct {
	Tts     bool   `json:"tts,omitempty"`
	Content string `json:"content"`
	Flags   uint   `json:"flags,omitempty"`
}

// Data is nil for Pong and required for message-producing types.
type InteractionResponse struct {
	Type InteractionResponseType         `json:"type"`
	Data *InteractionResponseDataMessage `json:"data,omitempty"`
}

func PongResponse() *InteractionResponse {
	return &InteractionResponse{Type: InteractionResponseTypePong}
}

func MessageResponse(content string) *InteractionResponse {
	return &InteractionResponse{
		Type: InteractionResponseTypeChannelMessageWithSource,
		Data: &InteractionResponseDataMessage{Content: content},
	}
}
