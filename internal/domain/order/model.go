// Package order drives customer orders through their status progression and
// triggers stock consumption at the right transition.
package order

import (
	"strings"
)

// Status of an order. The progression is strictly forward:
// PENDING → IN_PROGRESS → DELIVERED.
type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDelivered  Status = "DELIVERED"
)

// Next returns the following status. DELIVERED is terminal and maps to
// itself.
func (s Status) Next() Status {
	switch s {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusDelivered
	default:
		return s
	}
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDelivered:
		return true
	}
	return false
}

// Order is one customer order. RecipeID is a weak reference: the recipe may
// have been deleted, and every consumer must handle that case.
type Order struct {
	ID           string `json:"id"`
	CustomerName string `json:"customerName"`
	RecipeID     string `json:"recipeId"`

	// Batches is how many production runs of the recipe the order covers.
	Batches int    `json:"batches"`
	Status  Status `json:"status"`

	// CreatedAt is epoch milliseconds, matching the original documents.
	CreatedAt int64 `json:"createdAt"`
}

// Filter selects orders for display.
type Filter struct {
	// Status narrows to one status; empty matches all.
	Status Status

	// Query is a case-insensitive substring match over the customer name
	// and the linked recipe's name.
	Query string
}

// matches reports whether o passes the filter. recipeName may be empty when
// the reference dangles.
func (f Filter) matches(o Order, recipeName string) bool {
	if f.Status != "" && o.Status != f.Status {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(o.CustomerName), q) &&
			!strings.Contains(strings.ToLower(recipeName), q) {
			return false
		}
	}
	return true
}
