package structs

// https://discord.com/developers/docs/interactions/application-commands#application-command-object-application-command-types
type AppCmdType = uint8

const (
	AppCmdTypeChatInput AppCmdType = 1
	AppCmdTypeUser      AppCmdType = 2
	AppCmdTypeMessage   AppCmdType = 3
)

type AppCmdIntegrationType = uint8

const (
	AppIntegrationTypeGuildInstall AppCmdIntegrationType = 0
	AppIntegrationTypeUserInstall  AppCmdIntegrationType = 1
)

type AppCmdInteractionCtxType = uint8

const (
	AppInteractionContextTypeGuild          AppCmdInteractionCtxType = 0
	AppInteractionContextTypeBotDM          AppCmdInteractionCtxType = 1
	AppInteractionContextTypePrivateChannel AppCmdInteractionCtxType = 2
)

// https://discord.com/developers/docs/resources/channel#channel-object-channel-types
type ChannelType = uint8

const (
	ChannelTypeGuildVoice ChannelType = 2
)

type AppCmdOptionChoice struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type AppCmdOption struct {
	Type         AppCmdOptionType     `json:"type"`
	Name         string               `json:"name"`
	Description  string               `json:"description"`
	Required     bool                 `json:"required,omitempty"`
	Choices      []AppCmdOptionChoice `json:"choices,omitempty"`
	ChannelTypes []ChannelType        `json:"channel_types,omitempty"`
}

type AppCmd struct {
	ID               string                     `json:"id,omitempty"`
	Type             AppCmdType                 `json:"type,omitempty"`
	ApplicationID    string                     `json:"application_id,omitempty"`
	Name             string                     `json:"name"`
	Description      string                     `json:"description"`
	Options          []AppCmdOption             `json:"options,omitempty"`
	IntegrationTypes []AppCmdIntegrationType    `json:"integration_types,omitempty"`
	Contexts         []AppCmdInteractionCtxType `json:"contexts,omitempty"`
	Version          string                     `json:"version,omitempty"`
}
