// Package order contains the Order aggregate and its status state machine.
// An order is created by a customer, accepted by a farmer, assigned to a
// baler, and moves through a forward-only lifecycle until it is delivered or
// cancelled.
package order
