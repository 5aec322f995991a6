package interactions

import (
	"context"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3/log"
	"github.com/hendrywilliam/launchpad/src/structs"
)

type CommandHandler func(ctx context.Context, i *structs.Interaction) (*structs.InteractionResponse, error)

type route struct {
	prefix  string
	handler CommandHandler
}

// Dispatcher routes application commands by name prefix. Routes are matched
// in registration order.
type Dispatcher struct {
	routes []route
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Handle(prefix string, handler CommandHandler) {
	d.routes = append(d.routes, route{prefix: prefix, handler: handler})
}

func (d *Dispatcher) lookup(name string) (CommandHandler, bool) {
	for _, r := range d.routes {
		if strings.HasPrefix(name, r.prefix) {
			return r.handler, true
		}
	}
	return nil, false
}

// Dispatch answers Ping with Pong and hands application commands to their
// handler. Anything else is ErrUnsupportedInteraction.
func (d *Dispatcher) Dispatch(ctx context.Context, i *structs.Interaction) (*structs.InteractionResponse, error) {
	switch i.Type {
	case structs.InteractionTypePing:
		log.Debug("ping -> pong")
		return structs.PongResponse(), nil
	case structs.InteractionTypeApplicationCommand:
		if i.Data == nil {
			return nil, ErrMissingData
		}
		handler, ok := d.lookup(i.Data.Name)
		if !ok {
			return nil, fmt.Errorf("%w: command %q", ErrUnsupportedInteraction, i.Data.Name)
		}
		return handler(ctx, i)
	default:
		return nil, fmt.Errorf("%w: type %d", ErrUnsupportedInteraction, i.Type)
	}
}
