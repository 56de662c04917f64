// Package order implements the Order aggregate and its channel-aware lifecycle
// state machine. An order moves Waiting → Accepted → Served and then, for the
// delivery channel only, through Delivering and Delivered before reaching the
// terminal Completed status; eat-in and takeout orders complete straight from
// Served. Which transition is legal from which state is encoded explicitly in
// the Status type, so the matrix can be tested exhaustively.
package order
