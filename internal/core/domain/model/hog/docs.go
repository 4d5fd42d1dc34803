// Package hog contains the Hog aggregate and its allocation state machine.
//
// A hog is the unit of inventory in the trading operation. It enters the
// system through a delivery, remains Available until it is attached to a
// transaction, and is Sold exactly once. The Status value object enforces
// the single permitted transition and the invariant that a transaction
// reference exists if and only if the hog is Sold.
package hog
