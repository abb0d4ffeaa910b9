// Package metrics derives dashboard figures from the record
// collections. Everything here is a pure function of its inputs so
// the caller can recompute after any mutation.
package metrics

import (
	"sort"

	"github.com/iamagencia/crmdash/internal/model"
)

// DashboardStats are the headline figures shown on the dashboard.
type DashboardStats struct {
	ActiveClients  int
	MonthlyIncome  int64 // sum of active clients' monthly value
	OpenQuotes     int   // Sent or Pending
	ActiveProjects int   // In Development
	PipelineValue  int64 // sum of open quote amounts
	ConversionRate float64
}

// Aggregate recomputes every headline figure.
func Aggregate(clients []model.Client, quotes []model.Quote, projects []model.Project) DashboardStats {
	var s DashboardStats
	for _, c := range clients {
		if c.Status == model.ClientActive {
			s.ActiveClients++
			s.MonthlyIncome += c.MonthlyValue
		}
	}
	for _, q := range quotes {
		if q.Status.Open() {
			s.OpenQuotes++
			s.PipelineValue += q.Amount
		}
	}
	for _, p := range projects {
		if p.Status == model.ProjectDevelopment {
			s.ActiveProjects++
		}
	}
	s.ConversionRate = ConversionRate(quotes)
	return s
}

// ConversionRate is the share of approved quotes in percent.
// An empty quote book converts at zero, not NaN.
func ConversionRate(quotes []model.Quote) float64 {
	if len(quotes) == 0 {
		return 0
	}
	approved := 0
	for _, q := range quotes {
		if q.Status == model.QuoteApproved {
			approved++
		}
	}
	return float64(approved) / float64(len(quotes)) * 100
}

// StatusTotal pairs a quote status with its count and amount sum.
type StatusTotal struct {
	Status model.QuoteStatus
	Count  int
	Amount int64
}

// PipelineByStatus totals the quote book per status, in the fixed
// display order of QuoteStatuses.
func PipelineByStatus(quotes []model.Quote) []StatusTotal {
	totals := make([]StatusTotal, len(model.QuoteStatuses))
	index := make(map[model.QuoteStatus]int, len(model.QuoteStatuses))
	for i, st := range model.QuoteStatuses {
		totals[i].Status = st
		index[st] = i
	}
	for _, q := range quotes {
		i, ok := index[q.Status]
		if !ok {
			continue
		}
		totals[i].Count++
		totals[i].Amount += q.Amount
	}
	return totals
}

// IndustryCount pairs an industry label with its client count.
type IndustryCount struct {
	Industry string
	Count    int
}

// ClientsByIndustry counts clients per industry, largest first.
// Ties break alphabetically so the order is stable.
func ClientsByIndustry(clients []model.Client) []IndustryCount {
	byIndustry := make(map[string]int)
	for _, c := range clients {
		byIndustry[c.Industry]++
	}
	out := make([]IndustryCount, 0, len(byIndustry))
	for industry, n := range byIndustry {
		out = append(out, IndustryCount{Industry: industry, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Industry < out[j].Industry
	})
	return out
}

// TopClients returns up to n clients ordered by monthly value,
// largest first.
func TopClients(clients []model.Client, n int) []model.Client {
	out := make([]model.Client, len(clients))
	copy(out, clients)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MonthlyValue > out[j].MonthlyValue
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// HoursEfficiency is worked hours over estimated hours in percent.
// Zero estimate reads as zero efficiency.
func HoursEfficiency(p model.Project) float64 {
	if p.EstimatedHours == 0 {
		return 0
	}
	return float64(p.WorkedHours) / float64(p.EstimatedHours) * 100
}

// RecentActivities returns up to n activities ordered by date, newest
// first. The input is not modified.
func RecentActivities(acts []model.Activity, n int) []model.Activity {
	out := make([]model.Activity, len(acts))
	copy(out, acts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
