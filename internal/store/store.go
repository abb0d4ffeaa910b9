// Package store owns the four CRM record collections for one session.
//
// Records live in an in-memory SQLite database: nothing survives the
// process, matching the session-scoped lifecycle of the data, but reads
// and mutations go through real SQL so insertion order (rowid) is the
// display order and single-field updates stay cheap.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iamagencia/crmdash/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// FilterAll is the "no filter" sentinel accepted by every filter field.
const FilterAll = "All"

// ErrQuoteNotOpen is returned when approving a quote that is not Sent or Pending.
var ErrQuoteNotOpen = errors.New("store: quote is not open for approval")

// ErrNotFound is returned when a record id does not exist.
var ErrNotFound = errors.New("store: record not found")

// ValidationError reports a missing required field. The caller is
// expected to surface it inline and skip the insertion.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("store: required field %q is blank", e.Field)
}

// Store is the in-memory owner of Clients, Quotes, Projects and
// Activities for the lifetime of one session.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates a fresh empty store.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	// A :memory: database exists per connection; cap the pool at one
	// so every query sees the same database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SetClock overrides the store's clock. Tests only.
func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

func encodeTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func decodeTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, _ := time.Parse(time.RFC3339, s)
	return t
}

func (s *Store) count(table string) (int, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n)
	return n, err
}

// nextID builds the next sequential id: prefix + zero-padded index
// derived from the current collection size (third client -> CLI003).
func (s *Store) nextID(prefix, table string) (string, error) {
	n, err := s.count(table)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%03d", prefix, n+1), nil
}

// ─── Clients ────────────────────────────────────────────────────

// ClientFilter holds field-equality predicates combined with AND.
// Empty string or FilterAll disables a predicate.
type ClientFilter struct {
	Status   string
	City     string
	Industry string
}

func active(v string) bool {
	return v != "" && v != FilterAll
}

// AddClient validates, assigns the next CLI id and appends the client.
func (s *Store) AddClient(c model.Client) (model.Client, error) {
	if strings.TrimSpace(c.Name) == "" {
		return model.Client{}, &ValidationError{Field: "name"}
	}
	if strings.TrimSpace(c.Email) == "" {
		return model.Client{}, &ValidationError{Field: "email"}
	}

	id, err := s.nextID("CLI", "clients")
	if err != nil {
		return model.Client{}, err
	}
	c.ID = id
	if c.Registered.IsZero() {
		c.Registered = s.now()
	}
	if c.LastContact.IsZero() {
		c.LastContact = c.Registered
	}

	_, err = s.db.Exec(`INSERT INTO clients
		(id, name, email, phone, city, industry, status, monthly_value,
		 registered, last_contact, website, services, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.Name, c.Email, c.Phone, c.City, c.Industry, string(c.Status), c.MonthlyValue,
		encodeTime(c.Registered), encodeTime(c.LastContact), c.Website, c.Services, c.Notes,
	)
	if err != nil {
		return model.Client{}, fmt.Errorf("inserting client: %w", err)
	}
	return c, nil
}

// Clients returns the clients matching the filter, in insertion order.
func (s *Store) Clients(f ClientFilter) ([]model.Client, error) {
	q := `SELECT id, name, email, phone, city, industry, status, monthly_value,
		registered, last_contact, website, services, notes FROM clients`
	var conds []string
	var args []any
	if active(f.Status) {
		conds = append(conds, "status = ?")
		args = append(args, f.Status)
	}
	if active(f.City) {
		conds = append(conds, "city = ?")
		args = append(args, f.City)
	}
	if active(f.Industry) {
		conds = append(conds, "industry = ?")
		args = append(args, f.Industry)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY rowid"

	rows, err := s.db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var clients []model.Client
	for rows.Next() {
		var c model.Client
		var status, registered, lastContact string
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.City, &c.Industry,
			&status, &c.MonthlyValue, &registered, &lastContact,
			&c.Website, &c.Services, &c.Notes); err != nil {
			return nil, err
		}
		c.Status = model.ClientStatus(status)
		c.Registered = decodeTime(registered)
		c.LastContact = decodeTime(lastContact)
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

// ClientByName returns the first client with the given name.
func (s *Store) ClientByName(name string) (model.Client, bool, error) {
	clients, err := s.Clients(ClientFilter{})
	if err != nil {
		return model.Client{}, false, err
	}
	for _, c := range clients {
		if c.Name == name {
			return c, true, nil
		}
	}
	return model.Client{}, false, nil
}

// ─── Quotes ─────────────────────────────────────────────────────

// AddQuote validates, assigns the next COT id and appends the quote.
func (s *Store) AddQuote(q model.Quote) (model.Quote, error) {
	if strings.TrimSpace(q.Client) == "" {
		return model.Quote{}, &ValidationError{Field: "client"}
	}
	if q.Amount <= 0 {
		return model.Quote{}, &ValidationError{Field: "amount"}
	}

	id, err := s.nextID("COT", "quotes")
	if err != nil {
		return model.Quote{}, err
	}
	q.ID = id
	if q.Issued.IsZero() {
		q.Issued = s.now()
	}

	_, err = s.db.Exec(`INSERT INTO quotes
		(id, client, service, amount, status, issued, expires, probability, owner, notes,
		 rejection_reason, alternative, reconversion, recontact)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		q.ID, q.Client, q.Service, q.Amount, string(q.Status),
		encodeTime(q.Issued), encodeTime(q.Expires), q.Probability, q.Owner, q.Notes,
		q.RejectionReason, q.Alternative, q.Reconversion, encodeTime(q.Recontact),
	)
	if err != nil {
		return model.Quote{}, fmt.Errorf("inserting quote: %w", err)
	}
	return q, nil
}

// Quotes returns all quotes in insertion order.
func (s *Store) Quotes() ([]model.Quote, error) {
	rows, err := s.db.Query(`SELECT id, client, service, amount, status, issued, expires,
		probability, owner, notes, rejection_reason, alternative, reconversion, recontact
		FROM quotes ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var quotes []model.Quote
	for rows.Next() {
		var q model.Quote
		var status, issued, expires, recontact string
		if err := rows.Scan(&q.ID, &q.Client, &q.Service, &q.Amount, &status,
			&issued, &expires, &q.Probability, &q.Owner, &q.Notes,
			&q.RejectionReason, &q.Alternative, &q.Reconversion, &recontact); err != nil {
			return nil, err
		}
		q.Status = model.QuoteStatus(status)
		q.Issued = decodeTime(issued)
		q.Expires = decodeTime(expires)
		q.Recontact = decodeTime(recontact)
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

// ApproveQuote transitions a Sent or Pending quote to Approved.
func (s *Store) ApproveQuote(id string) error {
	var status string
	err := s.db.QueryRow("SELECT status FROM quotes WHERE id = ?", id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !model.QuoteStatus(status).Open() {
		return ErrQuoteNotOpen
	}
	_, err = s.db.Exec("UPDATE quotes SET status = ?, probability = 100 WHERE id = ?",
		string(model.QuoteApproved), id)
	return err
}

// ─── Projects ───────────────────────────────────────────────────

// AddProject assigns the next PRY id and appends the project.
func (s *Store) AddProject(p model.Project) (model.Project, error) {
	id, err := s.nextID("PRY", "projects")
	if err != nil {
		return model.Project{}, err
	}
	p.ID = id

	_, err = s.db.Exec(`INSERT INTO projects
		(id, client, name, status, progress, started, delivery, value,
		 estimated_hours, worked_hours, owner)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Client, p.Name, string(p.Status), p.Progress,
		encodeTime(p.Started), encodeTime(p.Delivery), p.Value,
		p.EstimatedHours, p.WorkedHours, p.Owner,
	)
	if err != nil {
		return model.Project{}, fmt.Errorf("inserting project: %w", err)
	}
	return p, nil
}

// Projects returns all projects in insertion order.
func (s *Store) Projects() ([]model.Project, error) {
	rows, err := s.db.Query(`SELECT id, client, name, status, progress, started, delivery,
		value, estimated_hours, worked_hours, owner FROM projects ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var projects []model.Project
	for rows.Next() {
		var p model.Project
		var status, started, delivery string
		if err := rows.Scan(&p.ID, &p.Client, &p.Name, &status, &p.Progress,
			&started, &delivery, &p.Value, &p.EstimatedHours, &p.WorkedHours, &p.Owner); err != nil {
			return nil, err
		}
		p.Status = model.ProjectStatus(status)
		p.Started = decodeTime(started)
		p.Delivery = decodeTime(delivery)
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

// ─── Activities ─────────────────────────────────────────────────

// ActivityOptions carries the optional fields of RecordActivity.
// Zero values mean: no next action, status Completed, date now.
type ActivityOptions struct {
	NextAction string
	Status     model.ActivityStatus
	Date       time.Time
}

// AddActivity assigns the next ACT id and appends the activity as
// given, with no client side effect. Interactive logging goes through
// RecordActivity instead.
func (s *Store) AddActivity(a model.Activity) (model.Activity, error) {
	id, err := s.nextID("ACT", "activities")
	if err != nil {
		return model.Activity{}, err
	}
	a.ID = id
	if a.Status == "" {
		a.Status = model.ActivityCompleted
	}
	if a.Date.IsZero() {
		a.Date = s.now()
	}

	_, err = s.db.Exec(`INSERT INTO activities (id, date, type, client, description, status, next_action)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, encodeTime(a.Date), string(a.Type), a.Client, a.Description, string(a.Status), a.NextAction,
	)
	if err != nil {
		return model.Activity{}, fmt.Errorf("inserting activity: %w", err)
	}
	return a, nil
}

// RecordActivity appends an activity for the named client and, when a
// client with that exact name exists, updates its last-contact date.
// An unknown client name still records the activity; only the
// side effect is skipped.
func (s *Store) RecordActivity(client string, typ model.ActivityType, description string, opts ActivityOptions) (model.Activity, error) {
	a, err := s.AddActivity(model.Activity{
		Date:        opts.Date,
		Type:        typ,
		Client:      client,
		Description: description,
		Status:      opts.Status,
		NextAction:  opts.NextAction,
	})
	if err != nil {
		return model.Activity{}, err
	}

	// Best-effort last-contact update; a name with no match is fine.
	_, err = s.db.Exec("UPDATE clients SET last_contact = ? WHERE name = ?",
		encodeTime(a.Date), client)
	if err != nil {
		return model.Activity{}, fmt.Errorf("updating last contact: %w", err)
	}

	return a, nil
}

// Activities returns all activities in insertion order.
func (s *Store) Activities() ([]model.Activity, error) {
	rows, err := s.db.Query(`SELECT id, date, type, client, description, status, next_action
		FROM activities ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var acts []model.Activity
	for rows.Next() {
		var a model.Activity
		var date, typ, status string
		if err := rows.Scan(&a.ID, &date, &typ, &a.Client, &a.Description, &status, &a.NextAction); err != nil {
			return nil, err
		}
		a.Date = decodeTime(date)
		a.Type = model.ActivityType(typ)
		a.Status = model.ActivityStatus(status)
		acts = append(acts, a)
	}
	return acts, rows.Err()
}

// Counts returns the size of every collection.
func (s *Store) Counts() (clients, quotes, projects, activities int, err error) {
	if clients, err = s.count("clients"); err != nil {
		return
	}
	if quotes, err = s.count("quotes"); err != nil {
		return
	}
	if projects, err = s.count("projects"); err != nil {
		return
	}
	activities, err = s.count("activities")
	return
}
