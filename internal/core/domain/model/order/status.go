package order

import (
	"baleconnect/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a forward-only state machine:
//
//	pending ──> farmer_accepted ──> baler_assigned ──> in_progress ──> delivered
//	   │               │                  │                 │
//	   └───────────────┴──────────────────┴─────────────────┴──> cancelled
//
// delivered and cancelled are terminal; cancelled is reachable from every
// non-terminal status. Statuses are stored and transmitted as their string
// values, matching the wire format of the order API.
type Status string

const (
	// Pending is the initial status: the order is waiting for a farmer.
	Pending Status = "pending"

	// FarmerAccepted means a farmer has taken the order and may now assign a baler.
	FarmerAccepted Status = "farmer_accepted"

	// BalerAssigned means a baler has been assigned by the farmer.
	BalerAssigned Status = "baler_assigned"

	// InProgress means the baling work has started.
	InProgress Status = "in_progress"

	// Delivered means the bales have been delivered. Terminal.
	Delivered Status = "delivered"

	// Cancelled means the order was abandoned before delivery. Terminal.
	Cancelled Status = "cancelled"
)

// getSuccessors returns the single legal forward successor of each
// non-terminal status. Cancelled is handled separately in CanTransitionTo
// since it is reachable from every non-terminal status.
func getSuccessors() map[Status]Status {
	return map[Status]Status{
		Pending:        FarmerAccepted,
		FarmerAccepted: BalerAssigned,
		BalerAssigned:  InProgress,
		InProgress:     Delivered,
	}
}

// getValidStatuses returns the set of statuses accepted from external input.
func getValidStatuses() map[Status]struct{} {
	return map[Status]struct{}{
		Pending:        {},
		FarmerAccepted: {},
		BalerAssigned:  {},
		InProgress:     {},
		Delivered:      {},
		Cancelled:      {},
	}
}

// getDisplayText returns the bilingual Thai/English display labels.
// Kept as a deliberate product decision for bilingual operators.
func getDisplayText() map[Status]string {
	return map[Status]string{
		Pending:        "รอดำเนินการ / Pending",
		FarmerAccepted: "เกษตรกรรับงาน / Farmer accepted",
		BalerAssigned:  "มอบหมายคนอัดฟาง / Baler assigned",
		InProgress:     "กำลังดำเนินการ / In progress",
		Delivered:      "ส่งมอบแล้ว / Delivered",
		Cancelled:      "ยกเลิก / Cancelled",
	}
}

// StatusFromString parses a status arriving from storage or the wire.
// Returns a validation error for unknown values.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// Validate checks that the status is one of the known lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatuses()[s]; !ok {
		return errs.NewValueIsInvalidError("status: " + string(s))
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	return string(s)
}

// DisplayText returns the bilingual label used in user-facing views.
// Unknown statuses render as-is.
func (s Status) DisplayText() string {
	if text, ok := getDisplayText()[s]; ok {
		return text
	}
	return string(s)
}

// IsTerminal reports whether no further transition is permitted.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo validates that next is a legal successor of s.
// Cancellation is legal from every non-terminal status; every other move must
// follow the forward chain one step at a time.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return errs.NewInvalidTransitionError(string(s), string(next))
	}

	if next == Cancelled {
		return nil
	}

	if getSuccessors()[s] != next {
		return errs.NewInvalidTransitionError(string(s), string(next))
	}

	return nil
}

// Accept transitions the status to FarmerAccepted.
// Only legal from Pending.
func (s Status) Accept() (Status, error) {
	if err := s.CanTransitionTo(FarmerAccepted); err != nil {
		return "", err
	}
	return FarmerAccepted, nil
}

// AssignBaler transitions the status to BalerAssigned.
// Only legal from FarmerAccepted.
func (s Status) AssignBaler() (Status, error) {
	if err := s.CanTransitionTo(BalerAssigned); err != nil {
		return "", err
	}
	return BalerAssigned, nil
}

// Cancel transitions the status to Cancelled.
// Legal from every non-terminal status.
func (s Status) Cancel() (Status, error) {
	if err := s.CanTransitionTo(Cancelled); err != nil {
		return "", err
	}
	return Cancelled, nil
}
