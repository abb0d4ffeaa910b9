// Package model defines domain types for the agency CRM record store.
package model

import "time"

// ClientStatus is the lifecycle state of a client relationship.
type ClientStatus string

const (
	ClientActive   ClientStatus = "Active"
	ClientInactive ClientStatus = "Inactive"
	ClientProspect ClientStatus = "Prospect"
)

// ClientStatuses lists all valid client statuses in display order.
var ClientStatuses = []ClientStatus{ClientActive, ClientInactive, ClientProspect}

// Client is one agency client or prospect.
// MonthlyValue is in Chilean pesos (integer, no cents).
type Client struct {
	ID           string
	Name         string
	Email        string
	Phone        string
	City         string
	Industry     string
	Status       ClientStatus
	MonthlyValue int64
	Registered   time.Time
	LastContact  time.Time
	Website      string
	Services     string
	Notes        string
}
