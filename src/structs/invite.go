package structs

// https://discord.com/developers/docs/resources/invite#invite-object-invite-target-types
type InviteTargetType = uint8

const (
	InviteTargetTypeStream              InviteTargetType = 1
	InviteTargetTypeEmbeddedApplication InviteTargetType = 2
)

// https://discord.com/developers/docs/resources/channel#create-channel-invite
type ChannelInviteRequest struct {
	MaxAge              int              `json:"max_age"`
	MaxUses             int              `json:"max_uses"`
	Temporary           bool             `json:"temporary"`
	Unique              bool             `json:"unique"`
	TargetType          InviteTargetType `json:"target_type"`
	TargetApplicationID string           `json:"target_application_id"`
}

type Application struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type ChannelInviteResponse struct {
	Code              string      `json:"code"`
	TargetApplication Application `json:"target_application"`
}
