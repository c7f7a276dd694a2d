package transport

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"baleconnect/internal/pkg/errs"
)

// Mode selects where operations are served.
type Mode string

const (
	// ModeRemote forwards operations to an upstream BaleConnect server.
	ModeRemote Mode = "remote"
	// ModeLocal serves operations in-process against the local store.
	ModeLocal Mode = "local"
)

// ModeFromString parses a mode arriving from configuration.
func ModeFromString(s string) (Mode, error) {
	switch Mode(s) {
	case ModeRemote, ModeLocal:
		return Mode(s), nil
	default:
		return "", errs.NewValueIsInvalidError("transport_mode: " + s)
	}
}

// RemoteCaller forwards one operation to the upstream server. A returned
// error means the server could not be reached at all; HTTP-level failures
// (4xx, 5xx) are expressed through the Outcome instead and do NOT trip the
// fallback latch.
type RemoteCaller interface {
	Send(ctx context.Context, op string, payload []byte) (Outcome, error)
}

// Adapter routes operations to the remote server or the local dispatcher.
//
// The fallback latch is one-way: the first connection-level remote failure
// permanently switches the adapter to local mode and the failing call is
// served locally, so the caller never observes the outage.
type Adapter struct {
	mu     sync.Mutex
	mode   Mode
	remote RemoteCaller
	local  *LocalDispatcher
	logger *slog.Logger
}

// NewAdapter creates an adapter starting in the given mode. The remote
// caller may be nil when starting in local mode.
func NewAdapter(mode Mode, remote RemoteCaller, local *LocalDispatcher, logger *slog.Logger) (*Adapter, error) {
	if local == nil {
		return nil, errs.NewValueIsRequiredError("local dispatcher")
	}
	if mode == ModeRemote && remote == nil {
		return nil, errs.NewValueIsRequiredError("remote caller")
	}

	return &Adapter{
		mode:   mode,
		remote: remote,
		local:  local,
		logger: logger.With("component", "transport"),
	}, nil
}

// Mode reports where the adapter currently serves operations.
func (a *Adapter) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

// Send executes one operation and always returns an Outcome.
func (a *Adapter) Send(ctx context.Context, op string, payload []byte) Outcome {
	if a.Mode() == ModeLocal {
		return a.local.Dispatch(ctx, op, payload)
	}

	outcome, err := a.remote.Send(ctx, op, payload)
	if err == nil {
		return outcome
	}

	if !errors.Is(err, errs.ErrTransportFailure) {
		return failureOutcome(err)
	}

	a.fallBack(op, err)
	return a.local.Dispatch(ctx, op, payload)
}

func (a *Adapter) fallBack(op string, cause error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.mode == ModeLocal {
		return
	}
	a.mode = ModeLocal
	a.logger.Warn("remote server unreachable, switching to local mode permanently",
		"op", op, "error", cause)
}
