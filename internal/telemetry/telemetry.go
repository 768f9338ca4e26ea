// Package telemetry publishes module lifecycle events to a socket.io server.
package telemetry

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/specialistvlad/expandr/host"
	"github.com/specialistvlad/expandr/internal/config"
	"github.com/specialistvlad/expandr/internal/ctxlog"
)

const connectTimeout = 15 * time.Second

// Event is the payload emitted for every lifecycle notification.
type Event struct {
	Type   string `json:"type"`
	Module string `json:"module"`
	State  string `json:"state,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Emitter sends one event. *Publisher is the socket.io implementation.
type Emitter interface {
	Emit(ev Event)
}

// Callbacks maps load lifecycle notifications onto events for e. They never
// skip a module and never re-raise errors.
func Callbacks(e Emitter) host.Callbacks {
	return host.Callbacks{
		OnLoading: func(_ context.Context, ev *host.LoadingEvent) {
			e.Emit(Event{Type: "loading", Module: ev.Module})
		},
		OnLoaded: func(_ context.Context, ev host.LoadedEvent) {
			e.Emit(Event{Type: "loaded", Module: ev.Module, State: host.Loaded.String()})
		},
		OnError: func(_ context.Context, ev host.ErrorEvent) error {
			out := Event{Type: "error", Module: ev.Module, State: ev.State.String()}
			if ev.Err != nil {
				out.Error = ev.Err.Error()
			}
			e.Emit(out)
			return nil
		},
	}
}

// Publisher emits events over a connected socket.io client.
type Publisher struct {
	client *socket.Socket
	event  string
}

// Dial connects to the server described by cfg and waits for the connection.
func Dial(ctx context.Context, cfg config.Telemetry) (*Publisher, error) {
	logger := ctxlog.FromContext(ctx).With("component", "telemetry", "url", cfg.URL)
	logger.Info("Connecting telemetry client...")

	parsedURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)
	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(cfg.Namespace, opts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Telemetry connected", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			} else {
				err = fmt.Errorf("%v", errs[0])
			}
		}
		connectChan <- err
	})
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &Publisher{client: io, event: cfg.Event}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, errors.New("context cancelled while waiting for socket.io connection")
	case <-time.After(connectTimeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", connectTimeout)
	}
}

func (p *Publisher) Emit(ev Event) {
	p.client.Emit(p.event, ev)
}

// Close disconnects the client.
func (p *Publisher) Close() error {
	p.client.Disconnect()
	return nil
}
