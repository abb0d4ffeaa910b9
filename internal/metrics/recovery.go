package metrics

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/iamagencia/crmdash/internal/model"
)

// Reconversion priorities.
const (
	PriorityHigh   = "ALTA"
	PriorityMedium = "MEDIA"
)

const highReconversionScore = 85

// ParseCurrencyToken extracts the first dollar figure embedded in
// free text: "Plan básico por $15,000" yields 15000. Comma and dot
// thousands separators are consumed only while digits follow, so a
// comma ending the figure terminates it. Returns ok=false when the
// text carries no dollar sign or no digits follow it.
func ParseCurrencyToken(text string) (int64, bool) {
	_, rest, found := strings.Cut(text, "$")
	if !found {
		return 0, false
	}

	var digits strings.Builder
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if c >= '0' && c <= '9' {
			digits.WriteByte(c)
			continue
		}
		if (c == ',' || c == '.') && i+1 < len(rest) && rest[i+1] >= '0' && rest[i+1] <= '9' {
			continue
		}
		break
	}
	if digits.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// RecoveryEstimate sums the parseable alternative-proposal figures of
// rejected quotes. Quotes whose alternative carries no dollar figure
// contribute nothing.
func RecoveryEstimate(quotes []model.Quote) int64 {
	var total int64
	for _, q := range quotes {
		if q.Status != model.QuoteRejected {
			continue
		}
		if v, ok := ParseCurrencyToken(q.Alternative); ok {
			total += v
		}
	}
	return total
}

// ReconversionPriority grades a reconversion score.
func ReconversionPriority(score int) string {
	if score >= highReconversionScore {
		return PriorityHigh
	}
	return PriorityMedium
}

// Recontact is one rejected quote on the recontact calendar.
type Recontact struct {
	Quote    model.Quote
	Days     int
	Band     Band
	Priority string
}

// RecontactSchedule lists rejected quotes with a recontact date,
// ordered by remaining days so overdue follow-ups surface first.
func RecontactSchedule(now time.Time, quotes []model.Quote) []Recontact {
	var out []Recontact
	for _, q := range quotes {
		if q.Status != model.QuoteRejected || q.Recontact.IsZero() {
			continue
		}
		days := CountdownDays(now, q.Recontact)
		out = append(out, Recontact{
			Quote:    q,
			Days:     days,
			Band:     BandFor(days),
			Priority: ReconversionPriority(q.Reconversion),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Days < out[j].Days })
	return out
}

// AverageReconversion is the mean reconversion score over rejected
// quotes, zero when there are none.
func AverageReconversion(quotes []model.Quote) float64 {
	total, n := 0, 0
	for _, q := range quotes {
		if q.Status == model.QuoteRejected {
			total += q.Reconversion
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(total) / float64(n)
}
