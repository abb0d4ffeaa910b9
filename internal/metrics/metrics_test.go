package metrics

import (
	"testing"
	"time"

	"github.com/iamagencia/crmdash/internal/model"
)

func TestConversionRate(t *testing.T) {
	cases := []struct {
		name     string
		statuses []model.QuoteStatus
		want     float64
	}{
		{"empty book", nil, 0},
		{"all approved", []model.QuoteStatus{model.QuoteApproved, model.QuoteApproved}, 100},
		{"three of five", []model.QuoteStatus{
			model.QuoteApproved, model.QuoteApproved, model.QuoteApproved,
			model.QuoteSent, model.QuotePending,
		}, 60},
		{"none approved", []model.QuoteStatus{model.QuoteSent, model.QuoteRejected}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			quotes := make([]model.Quote, len(tc.statuses))
			for i, st := range tc.statuses {
				quotes[i] = model.Quote{Status: st}
			}
			if got := ConversionRate(quotes); got != tc.want {
				t.Errorf("ConversionRate() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAggregatePipeline(t *testing.T) {
	quotes := []model.Quote{
		{Amount: 600000, Status: model.QuoteApproved},
		{Amount: 1200000, Status: model.QuoteSent},
		{Amount: 750000, Status: model.QuotePending},
		{Amount: 25000, Status: model.QuoteRejected},
	}
	clients := []model.Client{
		{Status: model.ClientActive, MonthlyValue: 600000},
		{Status: model.ClientActive, MonthlyValue: 1000000},
		{Status: model.ClientProspect, MonthlyValue: 800000},
	}
	projects := []model.Project{
		{Status: model.ProjectDevelopment},
		{Status: model.ProjectCompleted},
		{Status: model.ProjectDevelopment},
	}

	s := Aggregate(clients, quotes, projects)

	if s.PipelineValue != 1950000 {
		t.Errorf("PipelineValue = %d, want 1950000", s.PipelineValue)
	}
	if s.OpenQuotes != 2 {
		t.Errorf("OpenQuotes = %d, want 2", s.OpenQuotes)
	}
	if s.ActiveClients != 2 || s.MonthlyIncome != 1600000 {
		t.Errorf("ActiveClients/MonthlyIncome = %d/%d, want 2/1600000", s.ActiveClients, s.MonthlyIncome)
	}
	if s.ActiveProjects != 2 {
		t.Errorf("ActiveProjects = %d, want 2", s.ActiveProjects)
	}
	if s.ConversionRate != 25 {
		t.Errorf("ConversionRate = %v, want 25", s.ConversionRate)
	}
}

func TestCountdownBands(t *testing.T) {
	now := time.Date(2024, 3, 28, 15, 30, 0, 0, time.UTC)

	cases := []struct {
		name     string
		deadline time.Time
		wantDays int
		wantBand Band
	}{
		{"today", time.Date(2024, 3, 28, 9, 0, 0, 0, time.UTC), 0, Overdue},
		{"yesterday", time.Date(2024, 3, 27, 0, 0, 0, 0, time.UTC), -1, Overdue},
		{"in two days", time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC), 2, Imminent},
		{"in three days", time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), 3, Imminent},
		{"in ten days", time.Date(2024, 4, 7, 0, 0, 0, 0, time.UTC), 10, Scheduled},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days := CountdownDays(now, tc.deadline)
			if days != tc.wantDays {
				t.Errorf("CountdownDays() = %d, want %d", days, tc.wantDays)
			}
			if band := BandFor(days); band != tc.wantBand {
				t.Errorf("BandFor(%d) = %v, want %v", days, band, tc.wantBand)
			}
		})
	}
}

func TestQuoteExpiriesOrdering(t *testing.T) {
	now := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	quotes := []model.Quote{
		{ID: "COT004", Client: "Hospital Antofagasta", Status: model.QuoteSent,
			Expires: time.Date(2024, 4, 20, 0, 0, 0, 0, time.UTC)},
		{ID: "COT005", Client: "Clínica Regional", Status: model.QuotePending,
			Expires: time.Date(2024, 4, 15, 0, 0, 0, 0, time.UTC)},
		{ID: "COT001", Client: "Histocell", Status: model.QuoteApproved,
			Expires: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)},
	}

	got := QuoteExpiries(now, quotes)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (approved quote excluded)", len(got))
	}
	if got[0].ID != "COT005" || got[1].ID != "COT004" {
		t.Errorf("order = %s, %s; want COT005, COT004", got[0].ID, got[1].ID)
	}
	if got[0].Band != Imminent {
		t.Errorf("COT005 band = %v, want Imminent", got[0].Band)
	}
}

func TestClientsByIndustry(t *testing.T) {
	clients := []model.Client{
		{Industry: "Clínica"},
		{Industry: "Laboratorio Anatomía Patológica"},
		{Industry: "Clínica"},
	}
	got := ClientsByIndustry(clients)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Industry != "Clínica" || got[0].Count != 2 {
		t.Errorf("top industry = %+v, want Clínica x2", got[0])
	}
}

func TestHoursEfficiency(t *testing.T) {
	if got := HoursEfficiency(model.Project{EstimatedHours: 120, WorkedHours: 90}); got != 75 {
		t.Errorf("HoursEfficiency = %v, want 75", got)
	}
	if got := HoursEfficiency(model.Project{}); got != 0 {
		t.Errorf("zero estimate efficiency = %v, want 0", got)
	}
}
