package domain

import (
	"errors"
	"fmt"
	"time"
)

// OrderStatus is the order lifecycle state. Pending is the only
// non-terminal state.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusCanceled  OrderStatus = "Canceled"
)

// ErrInvalidTransition is returned when a status change is not allowed by
// the transition table.
var ErrInvalidTransition = errors.New("invalid status transition")

var allowedTransitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusCompleted, StatusCanceled},
	StatusCompleted: {},
	StatusCanceled:  {},
}

// Valid reports whether s is one of the known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is allowed.
// A transition to the current status is allowed so repeated updates are
// idempotent.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == next {
		return true
	}
	for _, t := range allowedTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Transition validates a status change against the transition table.
func (s OrderStatus) Transition(next OrderStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}
	if !s.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return nil
}

// Order is created once at checkout. TotalPrice and the item prices are
// snapshots taken at that moment and never recomputed.
type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"userId"`
	TotalPrice    int64       `json:"totalPrice"`
	Status        OrderStatus `json:"status"`
	OrderDate     time.Time   `json:"orderDate"`
	Phone         string      `json:"phone"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []OrderItem `json:"items,omitempty"`
}

type OrderItem struct {
	ID          int64  `json:"id"`
	OrderID     int64  `json:"orderId"`
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}
