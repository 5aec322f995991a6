package webhook

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"github.com/hendrywilliam/launchpad/src/interactions"
	"github.com/hendrywilliam/launchpad/src/structs"
	"github.com/hendrywilliam/launchpad/src/verify"
)

const interactionKey = "interaction"

// VerifyKeyMiddleware rejects any request not signed by discord.
func (server *Server) VerifyKeyMiddleware(c fiber.Ctx) error {
	signature := c.Get(verify.HeaderSignature)
	timestamp := c.Get(verify.HeaderTimestamp)
	if err := verify.VerifyKey(server.publicKey, signature, timestamp, c.BodyRaw()); err != nil {
		return err
	}
	return c.Next()
}

// ParseInteractionMiddleware decodes the verified body and stores it in locals.
func (server *Server) ParseInteractionMiddleware(c fiber.Ctx) error {
	i := new(structs.Interaction)
	if err := json.Unmarshal(c.BodyRaw(), i); err != nil {
		return fmt.Errorf("%w: %w", interactions.ErrMalformedPayload, err)
	}
	c.Locals(interactionKey, i)
	return c.Next()
}

func interactionFrom(c fiber.Ctx) (*structs.Interaction, bool) {
	i, ok := c.Locals(interactionKey).(*structs.Interaction)
	return i, ok
}
