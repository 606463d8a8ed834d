package stockmarket

import "errors"

// Errors reported by the Broker. They are user-facing and recoverable: the
// caller displays them and carries on with the session.
var (
	ErrInvalidQuantity      = errors.New("quantity must be positive")
	ErrInsufficientFunds    = errors.New("insufficient funds")
	ErrInsufficientHoldings = errors.New("insufficient holdings")
	ErrStockNotFound        = errors.New("stock not found in market")
	ErrAmountOverflow       = errors.New("amount out of range")
)

// ErrPersistenceUnavailable is returned by repositories when persisted state
// could not be read. The repository has already fallen back to a usable
// state (default market, no players) when it is returned.
var ErrPersistenceUnavailable = errors.New("persisted data unavailable")
