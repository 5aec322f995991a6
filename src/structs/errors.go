package structs

// Body returned by discord when a REST call fails.
// https://discord.com/developers/docs/reference#error-messages
type ErrorHTTPResponse struct {
	Message string      `json:"message"`
	Code    uint        `json:"code"`
	Errors  interface{} `json:"errors,omitempty"`
}
