package order

import (
	"errors"
	"fmt"

	"restaurant/internal/pkg/errs"
)

// ErrIllegalStatus is returned when a lifecycle transition is requested from a
// status (or channel) that does not permit it. Transitions are deliberately not
// idempotent: re-invoking one on a terminal or mismatched state always fails,
// so callers must treat this as a hard stop, never a retry signal.
var ErrIllegalStatus = errors.New("order status does not permit the requested transition")

// Status represents the lifecycle state of an order. It implements a state
// machine whose legal transitions depend on the order's fulfillment channel:
//
//	Waiting ──> Accepted ──> Served ──────────────────────────────> Completed   (eat-in, takeout)
//	Waiting ──> Accepted ──> Served ──> Delivering ──> Delivered ──> Completed  (delivery)
//
// Completed is terminal; no transition leaves it.
type Status int

const (
	// UnknownStatus represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	UnknownStatus Status = iota

	// Waiting is the initial status of every order.
	Waiting

	// Accepted means the kitchen has taken the order. For delivery orders,
	// acceptance also triggers the external dispatch request.
	Accepted

	// Served means the order has been prepared and handed over (to the guest,
	// the counter, or the courier).
	Served

	// Delivering means a delivery order is on its way. Delivery channel only.
	Delivering

	// Delivered means a delivery order reached its address. Delivery channel only.
	Delivered

	// Completed is the terminal status for every channel.
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		UnknownStatus: "Unknown",
		Waiting:       "Waiting",
		Accepted:      "Accepted",
		Served:        "Served",
		Delivering:    "Delivering",
		Delivered:     "Delivered",
		Completed:     "Completed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // UnknownStatus is intentionally excluded as it's invalid
	return map[Status]string{
		Waiting:    "Waiting",
		Accepted:   "Accepted",
		Served:     "Served",
		Delivering: "Delivering",
		Delivered:  "Delivered",
		Completed:  "Completed",
	}
}

// completableFrom is the explicit (channel → required predecessor) table for
// the Complete transition. Delivery orders must have been Delivered; the other
// channels complete straight from Served.
var completableFrom = map[Channel]Status{
	EatIn:    Served,
	Takeout:  Served,
	Delivery: Delivered,
}

// Validate checks that the Status belongs to the closed set of lifecycle
// states. UnknownStatus and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Accept transitions Waiting to Accepted. Legal for every channel.
func (s Status) Accept() (Status, error) {
	if s != Waiting {
		return 0, transitionError("accept", s)
	}
	return Accepted, nil
}

// Serve transitions Accepted to Served. Legal for every channel.
func (s Status) Serve() (Status, error) {
	if s != Accepted {
		return 0, transitionError("serve", s)
	}
	return Served, nil
}

// StartDelivery transitions Served to Delivering. Delivery channel only.
func (s Status) StartDelivery(channel Channel) (Status, error) {
	if channel != Delivery {
		return 0, channelError("start delivery", channel)
	}
	if s != Served {
		return 0, transitionError("start delivery", s)
	}
	return Delivering, nil
}

// CompleteDelivery transitions Delivering to Delivered. Delivery channel only.
func (s Status) CompleteDelivery(channel Channel) (Status, error) {
	if channel != Delivery {
		return 0, channelError("complete delivery", channel)
	}
	if s != Delivering {
		return 0, transitionError("complete delivery", s)
	}
	return Delivered, nil
}

// Complete transitions the order to the terminal Completed status. The
// required predecessor depends on the channel per the completableFrom table.
func (s Status) Complete(channel Channel) (Status, error) {
	required, ok := completableFrom[channel]
	if !ok {
		return 0, channelError("complete", channel)
	}
	if s != required {
		return 0, transitionError("complete", s)
	}
	return Completed, nil
}

func transitionError(action string, from Status) error {
	return fmt.Errorf("%w: cannot %s from %s", ErrIllegalStatus, action, from)
}

func channelError(action string, channel Channel) error {
	return fmt.Errorf("%w: cannot %s a %s order", ErrIllegalStatus, action, channel)
}
