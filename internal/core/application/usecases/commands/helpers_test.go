package commands_test

import (
	"testing"
	"time"

	"baleconnect/internal/core/domain/model/kernel"
	"baleconnect/internal/core/domain/model/order"
	"baleconnect/internal/core/domain/model/user"

	"github.com/stretchr/testify/require"
)

func newTestUser(t *testing.T, role user.Role) *user.User {
	t.Helper()
	u, err := user.NewUser(kernel.NewID(), role, "Test "+string(role), "0812345678",
		string(role)+"@example.com", "$2a$10$hash", "")
	require.NoError(t, err)
	return u
}

func newPendingOrder(t *testing.T, customerID kernel.ID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewID(), customerID, "rice_straw", 10,
		"99 Moo 4, San Sai, Chiang Mai", nil, time.Now().AddDate(0, 0, 7), "")
	require.NoError(t, err)
	return o
}

func newDeliveredOrder(t *testing.T, customerID, farmerID kernel.ID) *order.Order {
	t.Helper()
	o := newPendingOrder(t, customerID)
	require.NoError(t, o.Accept(farmerID, "", nil))
	require.NoError(t, o.AssignBaler(kernel.NewID()))
	require.NoError(t, o.ChangeStatus(order.InProgress))
	require.NoError(t, o.ChangeStatus(order.Delivered))
	return o
}
