package transport_test

import (
	"context"
	"net/http"
	"testing"

	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRemote struct {
	outcome transport.Outcome
	err     error
	calls   int
}

func (f *fakeRemote) Send(_ context.Context, _ string, _ []byte) (transport.Outcome, error) {
	f.calls++
	return f.outcome, f.err
}

func TestModeFromString(t *testing.T) {
	mode, err := transport.ModeFromString("remote")
	require.NoError(t, err)
	assert.Equal(t, transport.ModeRemote, mode)

	mode, err = transport.ModeFromString("local")
	require.NoError(t, err)
	assert.Equal(t, transport.ModeLocal, mode)

	_, err = transport.ModeFromString("hybrid")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestAdapter_LocalModeNeverTouchesRemote(t *testing.T) {
	remote := &fakeRemote{}
	adapter, err := transport.NewAdapter(transport.ModeLocal, remote, newTestDispatcher(t), testLogger())
	require.NoError(t, err)

	outcome := adapter.Send(context.Background(), transport.OpGetUsers, nil)
	assert.True(t, outcome.Success)
	assert.Zero(t, remote.calls)
	assert.Equal(t, transport.ModeLocal, adapter.Mode())
}

func TestAdapter_RemoteModeForwards(t *testing.T) {
	remote := &fakeRemote{outcome: transport.Outcome{Success: true, Status: http.StatusOK, Data: []byte(`[]`)}}
	adapter, err := transport.NewAdapter(transport.ModeRemote, remote, newTestDispatcher(t), testLogger())
	require.NoError(t, err)

	outcome := adapter.Send(context.Background(), transport.OpGetOrders, []byte(`{}`))
	assert.True(t, outcome.Success)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, transport.ModeRemote, adapter.Mode())
}

func TestAdapter_HTTPLevelFailureDoesNotTripLatch(t *testing.T) {
	remote := &fakeRemote{outcome: transport.Outcome{Status: http.StatusNotFound, Error: "not found"}}
	adapter, err := transport.NewAdapter(transport.ModeRemote, remote, newTestDispatcher(t), testLogger())
	require.NoError(t, err)

	outcome := adapter.Send(context.Background(), transport.OpGetOrder, []byte(`{"order_id":"x"}`))
	assert.False(t, outcome.Success)
	assert.Equal(t, http.StatusNotFound, outcome.Status)
	assert.Equal(t, transport.ModeRemote, adapter.Mode())
}

func TestAdapter_ConnectionFailureFallsBackPermanently(t *testing.T) {
	remote := &fakeRemote{err: errs.NewTransportFailureError(transport.OpGetUsers, context.DeadlineExceeded)}
	adapter, err := transport.NewAdapter(transport.ModeRemote, remote, newTestDispatcher(t), testLogger())
	require.NoError(t, err)

	// The failing call itself is served locally.
	outcome := adapter.Send(context.Background(), transport.OpGetUsers, nil)
	assert.True(t, outcome.Success)
	assert.Equal(t, transport.ModeLocal, adapter.Mode())
	assert.Equal(t, 1, remote.calls)

	// The latch is one-way: later calls skip the remote even though it
	// would succeed now.
	remote.err = nil
	remote.outcome = transport.Outcome{Success: true, Status: http.StatusOK, Data: []byte(`[]`)}

	outcome = adapter.Send(context.Background(), transport.OpGetUsers, nil)
	assert.True(t, outcome.Success)
	assert.Equal(t, 1, remote.calls)
	assert.Equal(t, transport.ModeLocal, adapter.Mode())
}

func TestNewAdapter_Validation(t *testing.T) {
	t.Run("remote mode requires a remote caller", func(t *testing.T) {
		_, err := transport.NewAdapter(transport.ModeRemote, nil, newTestDispatcher(t), testLogger())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("dispatcher is always required", func(t *testing.T) {
		_, err := transport.NewAdapter(transport.ModeLocal, nil, nil, testLogger())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
