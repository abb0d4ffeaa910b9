// Package export writes record collections to CSV files.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/iamagencia/crmdash/internal/model"
)

// ClientsFileName is the canonical export file name.
const ClientsFileName = "clientes_crm.csv"

var clientHeader = []string{
	"ID", "Name", "Email", "Phone", "City", "Industry", "Status",
	"Monthly_Value", "Registered", "Last_Contact", "Website", "Services", "Notes",
}

const dateLayout = "2006-01-02"

// WriteClients writes the client collection as CSV, header first,
// one row per client in the given order.
func WriteClients(w io.Writer, clients []model.Client) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(clientHeader); err != nil {
		return fmt.Errorf("export: writing header: %w", err)
	}
	for _, c := range clients {
		row := []string{
			c.ID, c.Name, c.Email, c.Phone, c.City, c.Industry, string(c.Status),
			strconv.FormatInt(c.MonthlyValue, 10),
			formatDate(c.Registered),
			formatDate(c.LastContact),
			c.Website, c.Services, c.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("export: writing client %s: %w", c.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// SaveClients writes the client CSV into dir using the canonical file
// name and returns the full path.
func SaveClients(dir string, clients []model.Client) (string, error) {
	path := filepath.Join(dir, ClientsFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: creating %s: %w", path, err)
	}
	if err := WriteClients(f, clients); err != nil {
		_ = f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: closing %s: %w", path, err)
	}
	return path, nil
}
