package transport_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"baleconnect/internal/adapters/out/pebblestore"
	"baleconnect/internal/adapters/out/pebblestore/orderrepo"
	"baleconnect/internal/adapters/out/pebblestore/ratingrepo"
	"baleconnect/internal/adapters/out/pebblestore/userrepo"
	"baleconnect/internal/core/application/usecases/queries"
	"baleconnect/internal/transport"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestDispatcher(t *testing.T) *transport.LocalDispatcher {
	t.Helper()
	store, err := pebblestore.NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return transport.NewLocalDispatcher(
		store,
		orderrepo.NewStoreOrderRepository(store),
		userrepo.NewStoreUserRepository(store),
		ratingrepo.NewStoreRatingRepository(store),
		0,
		testLogger(),
	)
}

func send[T any](t *testing.T, d *transport.LocalDispatcher, op string, req any, wantStatus int) T {
	t.Helper()
	payload, err := json.Marshal(req)
	require.NoError(t, err)

	outcome := d.Dispatch(context.Background(), op, payload)
	require.Equal(t, wantStatus, outcome.Status, "op %s: %s", op, outcome.Error)
	require.True(t, outcome.Success)

	var data T
	require.NoError(t, json.Unmarshal(outcome.Data, &data))
	return data
}

func register(t *testing.T, d *transport.LocalDispatcher, role, name, email string) queries.UserView {
	t.Helper()
	return send[queries.UserView](t, d, transport.OpRegister, transport.RegisterRequest{
		UserType: role,
		FullName: name,
		Phone:    "0812345678",
		Email:    email,
		Password: "secret123",
	}, http.StatusCreated)
}

func TestLocalDispatcher_RegisterAndAuth(t *testing.T) {
	d := newTestDispatcher(t)

	created := register(t, d, "customer", "Somchai", "somchai@example.com")
	assert.NotEmpty(t, created.UserID)
	assert.Equal(t, "customer", created.UserType)

	t.Run("valid credentials", func(t *testing.T) {
		view := send[queries.UserView](t, d, transport.OpAuth, transport.AuthRequest{
			Email:    "somchai@example.com",
			Password: "secret123",
		}, http.StatusOK)
		assert.Equal(t, created.UserID, view.UserID)
	})

	t.Run("wrong password yields 401", func(t *testing.T) {
		payload, _ := json.Marshal(transport.AuthRequest{Email: "somchai@example.com", Password: "nope"})
		outcome := d.Dispatch(context.Background(), transport.OpAuth, payload)
		assert.False(t, outcome.Success)
		assert.Equal(t, http.StatusUnauthorized, outcome.Status)
		assert.Contains(t, outcome.Error, "Invalid email or password")
	})

	t.Run("duplicate email yields 400", func(t *testing.T) {
		payload, _ := json.Marshal(transport.RegisterRequest{
			UserType: "farmer", FullName: "Dup", Phone: "0812345678",
			Email: "somchai@example.com", Password: "secret123",
		})
		outcome := d.Dispatch(context.Background(), transport.OpRegister, payload)
		assert.Equal(t, http.StatusBadRequest, outcome.Status)
	})
}

func TestLocalDispatcher_FullOrderLifecycle(t *testing.T) {
	d := newTestDispatcher(t)

	customer := register(t, d, "customer", "Somchai", "customer@example.com")
	farmer := register(t, d, "farmer", "Somsak", "farmer@example.com")
	baler := register(t, d, "baler", "Boonma", "baler@example.com")

	created := send[queries.OrderView](t, d, transport.OpCreateOrder, transport.CreateOrderRequest{
		CustomerID:      customer.UserID,
		BaleType:        "rice_straw",
		Quantity:        15,
		DeliveryAddress: "99 Moo 4, San Sai, Chiang Mai",
		PickupDate:      time.Now().AddDate(0, 0, 7).Format("2006-01-02"),
		Notes:           "morning delivery preferred",
	}, http.StatusCreated)
	assert.Equal(t, "pending", created.Status)
	assert.Equal(t, "Somchai", created.CustomerName)
	assert.Equal(t, "-", created.FarmerName)
	assert.Equal(t, 1, created.Version)

	accepted := send[queries.OrderView](t, d, transport.OpAcceptOrder, transport.AcceptOrderRequest{
		OrderID:      created.OrderID,
		FarmerID:     farmer.UserID,
		FieldAddress: "behind the temple",
	}, http.StatusOK)
	assert.Equal(t, "farmer_accepted", accepted.Status)
	assert.Equal(t, "Somsak", accepted.FarmerName)

	assigned := send[queries.OrderView](t, d, transport.OpAssignBaler, transport.AssignBalerRequest{
		OrderID:  created.OrderID,
		FarmerID: farmer.UserID,
		BalerID:  baler.UserID,
	}, http.StatusOK)
	assert.Equal(t, "baler_assigned", assigned.Status)
	assert.Equal(t, "Boonma", assigned.BalerName)

	inProgress := send[queries.OrderView](t, d, transport.OpUpdateStatus, transport.UpdateStatusRequest{
		OrderID: created.OrderID,
		Status:  "in_progress",
	}, http.StatusOK)
	assert.Equal(t, "in_progress", inProgress.Status)

	delivered := send[queries.OrderView](t, d, transport.OpUpdateStatus, transport.UpdateStatusRequest{
		OrderID: created.OrderID,
		Status:  "delivered",
	}, http.StatusOK)
	assert.Equal(t, "delivered", delivered.Status)
	assert.NotNil(t, delivered.DeliveredAt)

	t.Run("listing filters by farmer", func(t *testing.T) {
		views := send[[]queries.OrderView](t, d, transport.OpGetOrders, transport.GetOrdersRequest{
			FarmerID: farmer.UserID,
		}, http.StatusOK)
		require.Len(t, views, 1)
		assert.Equal(t, created.OrderID, views[0].OrderID)
	})

	t.Run("rating the farmer recomputes their aggregate", func(t *testing.T) {
		record := send[queries.RatingView](t, d, transport.OpSubmitRating, transport.SubmitRatingRequest{
			OrderID: created.OrderID,
			RaterID: customer.UserID,
			RateeID: farmer.UserID,
			Score:   5,
			Comment: "excellent bales",
		}, http.StatusCreated)
		assert.Equal(t, 5, record.Score)

		ratings := send[queries.UserRatingsView](t, d, transport.OpGetUserRatings, transport.GetUserRatingsRequest{
			UserID: farmer.UserID,
		}, http.StatusOK)
		assert.Equal(t, 5.0, ratings.AvgRating)
		assert.Equal(t, 1, ratings.Total)

		users := send[[]queries.UserView](t, d, transport.OpGetUsers, transport.GetUsersRequest{
			UserType: "farmer",
		}, http.StatusOK)
		require.Len(t, users, 1)
		assert.Equal(t, 5.0, users[0].AvgRating)
		assert.Equal(t, 1, users[0].TotalRatings)
	})

	t.Run("order ratings listing", func(t *testing.T) {
		views := send[[]queries.RatingView](t, d, transport.OpGetOrderRatings, transport.GetOrderRatingsRequest{
			OrderID: created.OrderID,
		}, http.StatusOK)
		require.Len(t, views, 1)
		assert.Equal(t, "Somchai", views[0].RaterName)
	})
}

func TestLocalDispatcher_ErrorStatuses(t *testing.T) {
	d := newTestDispatcher(t)
	customer := register(t, d, "customer", "Somchai", "customer@example.com")

	created := send[queries.OrderView](t, d, transport.OpCreateOrder, transport.CreateOrderRequest{
		CustomerID:      customer.UserID,
		BaleType:        "rice_straw",
		Quantity:        5,
		DeliveryAddress: "99 Moo 4, San Sai, Chiang Mai",
		PickupDate:      time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
	}, http.StatusCreated)

	t.Run("unknown op yields 404", func(t *testing.T) {
		outcome := d.Dispatch(context.Background(), "/no_such_op", nil)
		assert.False(t, outcome.Success)
		assert.Equal(t, http.StatusNotFound, outcome.Status)
	})

	t.Run("malformed payload yields 400", func(t *testing.T) {
		outcome := d.Dispatch(context.Background(), transport.OpCreateOrder, []byte("{not json"))
		assert.Equal(t, http.StatusBadRequest, outcome.Status)
	})

	t.Run("unknown order yields 404", func(t *testing.T) {
		payload, _ := json.Marshal(transport.GetOrderRequest{OrderID: "2f9a4f6e-58a5-4a4e-9f86-7c9f1a2b3c4d"})
		outcome := d.Dispatch(context.Background(), transport.OpGetOrder, payload)
		assert.Equal(t, http.StatusNotFound, outcome.Status)
		assert.Contains(t, outcome.Error, "ไม่พบข้อมูลที่ต้องการ")
	})

	t.Run("illegal transition yields 409", func(t *testing.T) {
		payload, _ := json.Marshal(transport.UpdateStatusRequest{OrderID: created.OrderID, Status: "delivered"})
		outcome := d.Dispatch(context.Background(), transport.OpUpdateStatus, payload)
		assert.Equal(t, http.StatusConflict, outcome.Status)
	})

	t.Run("cancellation by another customer yields 400", func(t *testing.T) {
		other := register(t, d, "customer", "Mallory", "mallory@example.com")
		payload, _ := json.Marshal(transport.UpdateStatusRequest{
			OrderID: created.OrderID, Status: "cancelled", ActorID: other.UserID,
		})
		outcome := d.Dispatch(context.Background(), transport.OpUpdateStatus, payload)
		assert.Equal(t, http.StatusBadRequest, outcome.Status)
	})

	t.Run("owner cancellation succeeds", func(t *testing.T) {
		view := send[queries.OrderView](t, d, transport.OpUpdateStatus, transport.UpdateStatusRequest{
			OrderID: created.OrderID, Status: "cancelled", ActorID: customer.UserID,
		}, http.StatusOK)
		assert.Equal(t, "cancelled", view.Status)
	})
}

func TestLocalDispatcher_ArtificialLatency(t *testing.T) {
	store, err := pebblestore.NewPebbleStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	d := transport.NewLocalDispatcher(
		store,
		orderrepo.NewStoreOrderRepository(store),
		userrepo.NewStoreUserRepository(store),
		ratingrepo.NewStoreRatingRepository(store),
		30*time.Millisecond,
		testLogger(),
	)

	started := time.Now()
	d.Dispatch(context.Background(), transport.OpGetUsers, nil)
	assert.GreaterOrEqual(t, time.Since(started), 30*time.Millisecond)
}
