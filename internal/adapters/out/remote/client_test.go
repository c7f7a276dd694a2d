package remote_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"baleconnect/internal/adapters/out/remote"
	"baleconnect/internal/pkg/errs"
	"baleconnect/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Send_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/get_orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req transport.GetOrdersRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pending", req.Status)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer server.Close()

	client, err := remote.NewClient(server.URL)
	require.NoError(t, err)

	payload, _ := json.Marshal(transport.GetOrdersRequest{Status: "pending"})
	outcome, err := client.Send(context.Background(), transport.OpGetOrders, payload)
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, http.StatusOK, outcome.Status)
	assert.Equal(t, json.RawMessage(`[]`), outcome.Data)
}

func TestClient_Send_HTTPFailurePassesThrough(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"success":false,"error":"not found"}`))
	}))
	defer server.Close()

	client, err := remote.NewClient(server.URL)
	require.NoError(t, err)

	outcome, err := client.Send(context.Background(), transport.OpGetOrder, []byte(`{"order_id":"x"}`))
	require.NoError(t, err, "HTTP-level failures must not be connection errors")
	assert.False(t, outcome.Success)
	assert.Equal(t, http.StatusNotFound, outcome.Status)
	assert.Equal(t, "not found", outcome.Error)
}

func TestClient_Send_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
	server.Close() // nothing listens anymore

	client, err := remote.NewClient(server.URL)
	require.NoError(t, err)

	_, err = client.Send(context.Background(), transport.OpGetUsers, nil)
	require.ErrorIs(t, err, errs.ErrTransportFailure)
}

func TestClient_Send_UnparseableBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>proxy error</html>"))
	}))
	defer server.Close()

	client, err := remote.NewClient(server.URL)
	require.NoError(t, err)

	outcome, err := client.Send(context.Background(), transport.OpGetUsers, nil)
	require.NoError(t, err)
	assert.False(t, outcome.Success)
	assert.Equal(t, http.StatusBadGateway, outcome.Status)
	assert.Contains(t, outcome.Error, "unexpected response")
}

func TestClient_Health(t *testing.T) {
	t.Run("healthy server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		}))
		defer server.Close()

		client, err := remote.NewClient(server.URL)
		require.NoError(t, err)
		assert.NoError(t, client.Health(context.Background()))
	})

	t.Run("unhealthy server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		client, err := remote.NewClient(server.URL)
		require.NoError(t, err)
		assert.ErrorIs(t, client.Health(context.Background()), errs.ErrTransportFailure)
	})

	t.Run("unreachable server", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))
		server.Close()

		client, err := remote.NewClient(server.URL)
		require.NoError(t, err)
		assert.ErrorIs(t, client.Health(context.Background()), errs.ErrTransportFailure)
	})
}

func TestNewClient_RequiresBaseURL(t *testing.T) {
	_, err := remote.NewClient("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
