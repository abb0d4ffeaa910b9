package metrics

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/iamagencia/crmdash/internal/model"
)

func TestParseCurrencyToken(t *testing.T) {
	cases := []struct {
		text   string
		want   int64
		wantOK bool
	}{
		{"Plan básico por $15,000", 15000, true},
		{"MVP en 6 semanas por $12,000", 12000, true},
		{"Landing optimizada por $8,000", 8000, true},
		{"Mantención mensual $300.000 CLP", 300000, true},
		{"$500, pagadero en dos cuotas", 500, true},
		{"Propuesta sin monto definido", 0, false},
		{"Descuento de $ sin cifra", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		t.Run(tc.text, func(t *testing.T) {
			got, ok := ParseCurrencyToken(tc.text)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("ParseCurrencyToken(%q) = %d, %v; want %d, %v", tc.text, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestRecoveryEstimate(t *testing.T) {
	quotes := []model.Quote{
		{Status: model.QuoteRejected, Alternative: "Plan básico por $15,000"},
		{Status: model.QuoteRejected, Alternative: "MVP en 6 semanas por $12,000"},
		{Status: model.QuoteRejected, Alternative: "Landing optimizada por $8,000"},
	}
	if got := RecoveryEstimate(quotes); got != 35000 {
		t.Errorf("RecoveryEstimate = %d, want 35000", got)
	}

	// No dollar figure means excluded, not zero-counted, and open
	// quotes never contribute.
	quotes = append(quotes,
		model.Quote{Status: model.QuoteRejected, Alternative: "Conversar opciones en reunión"},
		model.Quote{Status: model.QuoteSent, Alternative: "Plan premium por $99,000"},
	)
	if got := RecoveryEstimate(quotes); got != 35000 {
		t.Errorf("RecoveryEstimate with unparseable entries = %d, want 35000", got)
	}
}

// grouped renders n with comma thousands separators, e.g. 1234567 ->
// "1,234,567".
func grouped(n int64) string {
	s := strconv.FormatInt(n, 10)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}

func TestParseCurrencyTokenProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("round-trips grouped figures inside text", prop.ForAll(
		func(n int64) bool {
			got, ok := ParseCurrencyToken(fmt.Sprintf("Propuesta por $%s a convenir", grouped(n)))
			return ok && got == n
		},
		gen.Int64Range(0, 999999999),
	))

	properties.Property("text without a dollar sign never parses", prop.ForAll(
		func(s string) bool {
			_, ok := ParseCurrencyToken(s)
			return !ok
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t)
}

func TestReconversionPriority(t *testing.T) {
	if got := ReconversionPriority(85); got != PriorityHigh {
		t.Errorf("priority(85) = %s, want %s", got, PriorityHigh)
	}
	if got := ReconversionPriority(70); got != PriorityMedium {
		t.Errorf("priority(70) = %s, want %s", got, PriorityMedium)
	}
}

func TestRecontactSchedule(t *testing.T) {
	now := time.Date(2025, 8, 8, 0, 0, 0, 0, time.UTC)
	quotes := []model.Quote{
		{Client: "CLINICENTRO", Status: model.QuoteRejected, Reconversion: 85,
			Recontact: time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)},
		{Client: "NUEVA MASVIDA", Status: model.QuoteRejected, Reconversion: 90,
			Recontact: time.Date(2025, 8, 5, 0, 0, 0, 0, time.UTC)},
		{Client: "Histocell", Status: model.QuoteApproved},
	}

	got := RecontactSchedule(now, quotes)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Quote.Client != "NUEVA MASVIDA" || got[0].Band != Overdue {
		t.Errorf("first entry = %s/%v, want overdue NUEVA MASVIDA", got[0].Quote.Client, got[0].Band)
	}
	if got[0].Priority != PriorityHigh || got[1].Priority != PriorityHigh {
		t.Error("both scheduled recontacts should be high priority")
	}
}
