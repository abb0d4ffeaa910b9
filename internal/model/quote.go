package model

import "time"

// QuoteStatus is the pipeline state of a quote.
type QuoteStatus string

const (
	QuoteSent     QuoteStatus = "Sent"
	QuotePending  QuoteStatus = "Pending"
	QuoteApproved QuoteStatus = "Approved"
	QuoteRejected QuoteStatus = "Rejected"
)

// QuoteStatuses lists all valid quote statuses in pipeline order.
var QuoteStatuses = []QuoteStatus{QuoteSent, QuotePending, QuoteApproved, QuoteRejected}

// Open reports whether the quote is still in play (not yet won or lost).
func (s QuoteStatus) Open() bool {
	return s == QuoteSent || s == QuotePending
}

// Quote is a proposal sent to a client. Client references the client by
// name, not id — a carried-over quirk of the seed data; renames break
// the linkage and lookups fall back to no-ops.
type Quote struct {
	ID          string
	Client      string
	Service     string
	Amount      int64
	Status      QuoteStatus
	Issued      time.Time
	Expires     time.Time
	Probability int // 0-100 win probability
	Owner       string
	Notes       string

	// Reconversion fields, set only for rejected quotes that have a
	// cheaper alternative proposal on the table.
	RejectionReason string
	Alternative     string // free text, may embed a "$12,000" figure
	Reconversion    int    // 0-100 score
	Recontact       time.Time
}
