package domain

import "time"

// Client a customer identified by their identity document (cédula)
type Client struct {
	ID             int64
	DocumentNumber string
	FirstName      string
	LastName       string
	Phone          string
	Email          *string
	RegisteredAt   time.Time
}
