package metrics

import (
	"sort"
	"time"

	"github.com/iamagencia/crmdash/internal/model"
)

// Band classifies a deadline by urgency.
type Band int

const (
	// Overdue means the date has passed or is today.
	Overdue Band = iota
	// Imminent means one to three days remain.
	Imminent
	// Scheduled means more than three days remain.
	Scheduled
)

func (b Band) String() string {
	switch b {
	case Overdue:
		return "overdue"
	case Imminent:
		return "imminent"
	default:
		return "scheduled"
	}
}

// CountdownDays returns whole days from now until the deadline,
// negative when it has passed. Both sides are truncated to midnight
// so "tomorrow" is always 1 regardless of the hour.
func CountdownDays(now, deadline time.Time) int {
	day := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return int(day(deadline).Sub(day(now)).Hours() / 24)
}

// BandFor maps remaining days onto an urgency band.
func BandFor(days int) Band {
	switch {
	case days <= 0:
		return Overdue
	case days <= 3:
		return Imminent
	default:
		return Scheduled
	}
}

// Deadline is an upcoming date attached to a record.
type Deadline struct {
	ID     string
	Client string
	Label  string
	Date   time.Time
	Days   int
	Band   Band
}

// QuoteExpiries lists open quotes by expiry date, soonest first.
// Quotes without an expiry are skipped.
func QuoteExpiries(now time.Time, quotes []model.Quote) []Deadline {
	var out []Deadline
	for _, q := range quotes {
		if !q.Status.Open() || q.Expires.IsZero() {
			continue
		}
		days := CountdownDays(now, q.Expires)
		out = append(out, Deadline{
			ID:     q.ID,
			Client: q.Client,
			Label:  q.Service,
			Date:   q.Expires,
			Days:   days,
			Band:   BandFor(days),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}

// ProjectDeliveries lists unfinished projects by delivery date,
// soonest first.
func ProjectDeliveries(now time.Time, projects []model.Project) []Deadline {
	var out []Deadline
	for _, p := range projects {
		if p.Status == model.ProjectCompleted || p.Delivery.IsZero() {
			continue
		}
		days := CountdownDays(now, p.Delivery)
		out = append(out, Deadline{
			ID:     p.ID,
			Client: p.Client,
			Label:  p.Name,
			Date:   p.Delivery,
			Days:   days,
			Band:   BandFor(days),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}
