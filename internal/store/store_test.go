package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iamagencia/crmdash/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAddClientAssignsSequentialIDs(t *testing.T) {
	s := newTestStore(t)

	for i, name := range []string{"Histocell", "Cefes Garage", "Mina Norte"} {
		c, err := s.AddClient(model.Client{
			Name:   name,
			Email:  "x@example.cl",
			Status: model.ClientActive,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"CLI001", "CLI002", "CLI003"}[i], c.ID)
	}

	c, err := s.AddClient(model.Client{Name: "Cuarta", Email: "c@example.cl"})
	require.NoError(t, err)
	assert.Equal(t, "CLI004", c.ID)
}

func TestAddClientValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddClient(model.Client{Email: "x@example.cl"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)

	_, err = s.AddClient(model.Client{Name: "Histocell", Email: "  "})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)

	// Nothing gets inserted on a failed validation.
	clients, err := s.Clients(ClientFilter{})
	require.NoError(t, err)
	assert.Empty(t, clients)
}

func TestAddQuoteValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddQuote(model.Quote{Amount: 1000})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "client", verr.Field)

	_, err = s.AddQuote(model.Quote{Client: "Histocell", Amount: 0})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "amount", verr.Field)

	q, err := s.AddQuote(model.Quote{Client: "Histocell", Amount: 600000, Status: model.QuoteSent})
	require.NoError(t, err)
	assert.Equal(t, "COT001", q.ID)
}

func TestClientFilters(t *testing.T) {
	s := newTestStore(t)

	seed := []model.Client{
		{Name: "Histocell", Email: "a@x.cl", City: "Antofagasta", Industry: "Lab", Status: model.ClientActive},
		{Name: "Cefes Garage", Email: "b@x.cl", City: "Antofagasta", Industry: "Taller", Status: model.ClientActive},
		{Name: "Clínica Cumbres", Email: "c@x.cl", City: "Santiago", Industry: "Lab", Status: model.ClientProspect},
	}
	for _, c := range seed {
		_, err := s.AddClient(c)
		require.NoError(t, err)
	}

	all, err := s.Clients(ClientFilter{Status: FilterAll, City: FilterAll})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	antofagasta, err := s.Clients(ClientFilter{City: "Antofagasta"})
	require.NoError(t, err)
	assert.Len(t, antofagasta, 2)

	labProspects, err := s.Clients(ClientFilter{Industry: "Lab", Status: string(model.ClientProspect)})
	require.NoError(t, err)
	require.Len(t, labProspects, 1)
	assert.Equal(t, "Clínica Cumbres", labProspects[0].Name)
}

func TestRecordActivityUpdatesLastContact(t *testing.T) {
	s := newTestStore(t)
	s.SetClock(func() time.Time {
		return time.Date(2024, 3, 28, 10, 0, 0, 0, time.UTC)
	})

	_, err := s.AddClient(model.Client{
		Name:        "Histocell",
		Email:       "contacto@histocell.cl",
		LastContact: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	a, err := s.RecordActivity("Histocell", model.ActivityCall, "Seguimiento mensual", ActivityOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ACT001", a.ID)
	assert.Equal(t, model.ActivityCompleted, a.Status)

	c, ok, err := s.ClientByName("Histocell")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 3, 28, 10, 0, 0, 0, time.UTC), c.LastContact)
}

func TestRecordActivityUnknownClient(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddClient(model.Client{
		Name:        "Histocell",
		Email:       "contacto@histocell.cl",
		LastContact: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Activity lands, no client is touched.
	a, err := s.RecordActivity("Hospital Antofagasta", model.ActivityEmail, "Primer contacto", ActivityOptions{})
	require.NoError(t, err)
	assert.Equal(t, "ACT001", a.ID)

	acts, err := s.Activities()
	require.NoError(t, err)
	assert.Len(t, acts, 1)

	c, ok, err := s.ClientByName("Histocell")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), c.LastContact)
}

func TestApproveQuote(t *testing.T) {
	s := newTestStore(t)

	sent, err := s.AddQuote(model.Quote{Client: "Histocell", Amount: 600000, Status: model.QuoteSent, Probability: 70})
	require.NoError(t, err)
	approved, err := s.AddQuote(model.Quote{Client: "Cefes Garage", Amount: 300000, Status: model.QuoteApproved})
	require.NoError(t, err)

	require.NoError(t, s.ApproveQuote(sent.ID))
	assert.ErrorIs(t, s.ApproveQuote(approved.ID), ErrQuoteNotOpen)
	assert.ErrorIs(t, s.ApproveQuote("COT999"), ErrNotFound)

	quotes, err := s.Quotes()
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, model.QuoteApproved, quotes[0].Status)
	assert.Equal(t, 100, quotes[0].Probability)
}

func TestUpdateField(t *testing.T) {
	s := newTestStore(t)

	c, err := s.AddClient(model.Client{Name: "Histocell", Email: "contacto@histocell.cl"})
	require.NoError(t, err)

	require.NoError(t, s.UpdateField(Clients, c.ID, "phone", "+56 55 123 4567"))
	require.NoError(t, s.UpdateField(Clients, c.ID, "monthly_value", int64(600000)))

	assert.ErrorIs(t, s.UpdateField(Clients, c.ID, "id", "CLI099"), ErrUnknownField)
	assert.ErrorIs(t, s.UpdateField(Clients, "CLI404", "phone", "x"), ErrNotFound)
	assert.ErrorIs(t, s.UpdateField(Collection("invoices"), c.ID, "phone", "x"), ErrUnknownField)

	got, ok, err := s.ClientByName("Histocell")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "+56 55 123 4567", got.Phone)
	assert.Equal(t, int64(600000), got.MonthlyValue)
}

func TestQuoteRoundTripKeepsReconversionFields(t *testing.T) {
	s := newTestStore(t)

	recontact := time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)
	_, err := s.AddQuote(model.Quote{
		Client:          "CLINICENTRO",
		Service:         "Sistema de gestión",
		Amount:          25000,
		Status:          model.QuoteRejected,
		RejectionReason: "Presupuesto excede lo aprobado",
		Alternative:     "Plan básico por $15,000",
		Reconversion:    85,
		Recontact:       recontact,
	})
	require.NoError(t, err)

	quotes, err := s.Quotes()
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	q := quotes[0]
	assert.Equal(t, "Plan básico por $15,000", q.Alternative)
	assert.Equal(t, 85, q.Reconversion)
	assert.Equal(t, recontact, q.Recontact)
}
