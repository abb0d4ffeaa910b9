package store

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownField is returned when UpdateField is asked for a field
// that is not editable on the collection.
var ErrUnknownField = errors.New("store: unknown field")

// Collection names a record collection for UpdateField.
type Collection string

const (
	Clients    Collection = "clients"
	Quotes     Collection = "quotes"
	Projects   Collection = "projects"
	Activities Collection = "activities"
)

// editable maps collection -> field name -> column. Only listed
// fields may be updated; ids are never editable.
var editable = map[Collection]map[string]string{
	Clients: {
		"name":          "name",
		"email":         "email",
		"phone":         "phone",
		"city":          "city",
		"industry":      "industry",
		"status":        "status",
		"monthly_value": "monthly_value",
		"last_contact":  "last_contact",
		"website":       "website",
		"services":      "services",
		"notes":         "notes",
	},
	Quotes: {
		"client":           "client",
		"service":          "service",
		"amount":           "amount",
		"status":           "status",
		"expires":          "expires",
		"probability":      "probability",
		"owner":            "owner",
		"notes":            "notes",
		"rejection_reason": "rejection_reason",
		"alternative":      "alternative",
		"reconversion":     "reconversion",
		"recontact":        "recontact",
	},
	Projects: {
		"client":          "client",
		"name":            "name",
		"status":          "status",
		"progress":        "progress",
		"delivery":        "delivery",
		"value":           "value",
		"estimated_hours": "estimated_hours",
		"worked_hours":    "worked_hours",
		"owner":           "owner",
	},
	Activities: {
		"type":        "type",
		"description": "description",
		"status":      "status",
		"next_action": "next_action",
	},
}

// UpdateField sets a single editable field on an existing record.
// time.Time values are stored in the usual RFC3339 text encoding.
func (s *Store) UpdateField(col Collection, id, field string, value any) error {
	columns, ok := editable[col]
	if !ok {
		return fmt.Errorf("%w: collection %q", ErrUnknownField, col)
	}
	column, ok := columns[field]
	if !ok {
		return fmt.Errorf("%w: %s.%s", ErrUnknownField, col, field)
	}
	if t, ok := value.(time.Time); ok {
		value = encodeTime(t)
	}

	res, err := s.db.Exec(
		fmt.Sprintf("UPDATE %s SET %s = ? WHERE id = ?", col, column),
		value, id,
	)
	if err != nil {
		return fmt.Errorf("updating %s.%s: %w", col, field, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
