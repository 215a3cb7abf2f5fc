package entities

import (
	"time"

	"github.com/google/uuid"
)

// Assignment links one service order to one employee. An order carries
// one or more assignments; an employee may appear on many orders.
type Assignment struct {
	OrderID    uuid.UUID
	EmployeeID uuid.UUID
	CreatedAt  time.Time
}
