package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Channel is the fulfillment mode of an order. Together with Status it drives
// the lifecycle state machine: delivery orders pass through the Delivering and
// Delivered stages, eat-in and takeout orders complete straight from Served.
type Channel int

const (
	// UnknownChannel represents an invalid or undefined channel.
	// This value (0) helps catch uninitialized Channel values.
	UnknownChannel Channel = iota

	// EatIn orders are consumed at a table, which must be occupied when the
	// order is placed and is released when the order completes.
	EatIn

	// Takeout orders are picked up by the guest; no table, no delivery leg.
	Takeout

	// Delivery orders carry a delivery address and are handed to an external
	// dispatch service on acceptance.
	Delivery
)

func getChannelStrings() map[Channel]string {
	return map[Channel]string{
		UnknownChannel: "Unknown",
		EatIn:          "EatIn",
		Takeout:        "Takeout",
		Delivery:       "Delivery",
	}
}

func getValidChannelStrings() map[Channel]string {
	//nolint:exhaustive // UnknownChannel is intentionally excluded as it's invalid
	return map[Channel]string{
		EatIn:    "EatIn",
		Takeout:  "Takeout",
		Delivery: "Delivery",
	}
}

// Validate checks that the Channel is one of the closed set of fulfillment
// modes. UnknownChannel and out-of-range values are invalid.
func (c Channel) Validate() error {
	if _, ok := getValidChannelStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("channel",
			fmt.Errorf("%d is not a valid channel", c))
	}
	return nil
}

// String returns the human-readable name of the channel, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (c Channel) String() string {
	if str, ok := getChannelStrings()[c]; ok {
		return str
	}
	return "Unknown"
}
