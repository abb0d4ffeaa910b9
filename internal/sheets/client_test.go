package sheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClientRequiresSheetAndKey(t *testing.T) {
	cases := []struct {
		name    string
		sheetID string
		apiKey  string
		wantNil bool
	}{
		{"both set", "1abc", "AIzaKey", false},
		{"missing key", "1abc", "", true},
		{"missing sheet", "", "AIzaKey", true},
		{"whitespace key", "1abc", "   ", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClient(tc.sheetID, tc.apiKey, "")
			if (c == nil) != tc.wantNil {
				t.Errorf("NewClient(%q, %q) nil = %v, want %v", tc.sheetID, tc.apiKey, c == nil, tc.wantNil)
			}
		})
	}
}

func TestRowsParsesValues(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "AIzaKey" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"values":[["keyword","volumen"],["histocell laboratorio",120],["otorrino antofagasta",80]]}`))
	}))
	defer srv.Close()

	c := NewClient("1abc", "AIzaKey", srv.URL)
	rows, err := c.Rows(context.Background())
	if err != nil {
		t.Fatalf("Rows() error = %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[1][0] != "histocell laboratorio" {
		t.Errorf("rows[1][0] = %q", rows[1][0])
	}
	if rows[1][1] != "120" {
		t.Errorf("numeric cell = %q, want \"120\"", rows[1][1])
	}
}

func TestRowsUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient("1abc", "badkey", srv.URL)
	_, err := c.Rows(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}
