package webhook

import (
	"context"
	"crypto/ed25519"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/log"
	"github.com/gofiber/fiber/v3/middleware/logger"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
	"github.com/hendrywilliam/launchpad/src/interactions"
	"github.com/hendrywilliam/launchpad/src/structs"
	"github.com/hendrywilliam/launchpad/src/verify"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, i *structs.Interaction) (*structs.InteractionResponse, error)
}

type Server struct {
	router     *fiber.App
	publicKey  ed25519.PublicKey
	dispatcher Dispatcher
}

type errorResponse struct {
	Error string `json:"error"`
}

func NewServer(publicKey ed25519.PublicKey, dispatcher Dispatcher) *Server {
	server := &Server{
		publicKey:  publicKey,
		dispatcher: dispatcher,
	}
	server.setupRouter()
	return server
}

func statusOf(err error) int {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	case errors.Is(err, verify.ErrMissingSignature),
		errors.Is(err, verify.ErrMalformedSignature),
		errors.Is(err, verify.ErrInvalidSignature):
		return http.StatusBadRequest
	default:
		return interactions.StatusCode(err)
	}
}

// clientErrors are the only messages echoed back on a 4xx, wrapped details
// stay in the logs.
var clientErrors = []error{
	verify.ErrMissingSignature,
	verify.ErrMalformedSignature,
	verify.ErrInvalidSignature,
	interactions.ErrMalformedPayload,
	interactions.ErrMissingData,
	interactions.ErrMissingOption,
	interactions.ErrUnsupportedInteraction,
}

func publicMessage(err error, status int) string {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) && status < http.StatusInternalServerError {
		return fiberErr.Message
	}
	for _, known := range clientErrors {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return http.StatusText(status)
}

func (server *Server) errorHandler(c fiber.Ctx, err error) error {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		log.Errorw("interaction failed", "path", c.Path(), "status", status, "error", err)
	} else {
		log.Warnw("interaction rejected", "path", c.Path(), "status", status, "error", err)
	}
	return c.Status(status).JSON(errorResponse{Error: publicMessage(err, status)})
}

func (server *Server) setupRouter() {
	router := fiber.New(fiber.Config{
		AppName:      "launchpad",
		ErrorHandler: server.errorHandler,
	})
	router.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	router.Use(logger.New())
	router.Use(recoverer.New())

	router.Get("/", func(c fiber.Ctx) error {
		return c.SendString("launchpad is up")
	})
	// fiber runs the route middleware before the handler.
	router.Post("/", server.handleInteraction, server.VerifyKeyMiddleware, server.ParseInteractionMiddleware)
	server.router = router
}

func (server *Server) handleInteraction(c fiber.Ctx) error {
	i, ok := interactionFrom(c)
	if !ok {
		return interactions.ErrMalformedPayload
	}
	// Not tied to the shutdown signal so in-flight invites finish while fiber
	// drains. The REST client timeout bounds the call.
	resp, err := server.dispatcher.Dispatch(context.Background(), i)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

func (server *Server) StartServer(ctx context.Context, addr string) error {
	log.Infof("server start at %s", addr)
	return server.router.Listen(addr, fiber.ListenConfig{
		GracefulContext:       ctx,
		DisableStartupMessage: true,
		OnShutdownSuccess: func() {
			log.Info("server stopped.")
		},
	})
}
