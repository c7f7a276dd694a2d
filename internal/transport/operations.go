// Package transport routes marketplace operations either to a remote
// BaleConnect server over HTTP or to the in-process handlers backed by the
// local store. Every call yields a tagged Outcome instead of a Go error, so
// the HTTP boundary can serialize success and failure uniformly.
//
// The adapter starts in the configured mode. The first connection-level
// failure in remote mode flips a one-way latch to local mode; the failed call
// is then served locally and the adapter never returns to remote for the
// lifetime of the process.
package transport

// Operation names are the endpoint paths of the marketplace API. The same
// names are used as URL paths by the remote client and as dispatch keys by
// the local dispatcher.
const (
	OpAuth            = "/auth"
	OpRegister        = "/register"
	OpCreateOrder     = "/create_order"
	OpGetOrders       = "/get_orders"
	OpGetOrder        = "/get_order"
	OpAcceptOrder     = "/accept_order"
	OpAssignBaler     = "/assign_baler"
	OpUpdateStatus    = "/update_status"
	OpGetUsers        = "/get_users"
	OpSubmitRating    = "/submit_rating"
	OpGetUserRatings  = "/get_user_ratings"
	OpGetOrderRatings = "/get_order_ratings"
)
