package interactions

import (
	"errors"
	"net/http"
)

var (
	ErrMalformedPayload       = errors.New("malformed interaction payload")
	ErrMissingData            = errors.New("application command has no data")
	ErrMissingOption          = errors.New("missing required command option")
	ErrUnsupportedInteraction = errors.New("unsupported interaction")
	ErrUpstream               = errors.New("discord request failed")
)

// StatusCode maps a dispatch error to the http status returned to discord.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrMalformedPayload),
		errors.Is(err, ErrMissingData),
		errors.Is(err, ErrMissingOption),
		errors.Is(err, ErrUnsupportedInteraction):
		return http.StatusBadRequest
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
