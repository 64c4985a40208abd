// Package output persists per-subnet sweep reports as CSV files.
package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/projectdiscovery/pingx/pkg/sweep"
)

// Writer persists one CSV file per subnet report under a base directory.
// The directory is created on first write, never earlier, so runs with no
// results leave no trace on disk.
type Writer struct {
	Directory string

	now func() time.Time
}

// NewWriter returns a Writer rooted at directory.
func NewWriter(directory string) *Writer {
	return &Writer{Directory: directory, now: time.Now}
}

// Filename returns the report file name for subnet on the given date,
// e.g. "15JUN2025_ping results_192.168.1.0_24.csv".
func Filename(subnet string, date time.Time) string {
	day := strings.ToUpper(date.Format("02Jan2006"))
	return fmt.Sprintf("%s_ping results_%s.csv", day, strings.ReplaceAll(subnet, "/", "_"))
}

// WriteReport renders the report as a two-column table (IP Address,
// Reachable) and persists it, returning the path written. Rows follow the
// report order, one per host, reachability spelled true/false.
func (w *Writer) WriteReport(subnet string, report *sweep.Report) (string, error) {
	if err := os.MkdirAll(w.Directory, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(w.Directory, Filename(subnet, w.now()))
	file, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = file.Close()
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"IP Address", "Reachable"}); err != nil {
		return "", err
	}
	for _, result := range report.Results {
		if err := writer.Write([]string{result.IP.String(), strconv.FormatBool(result.Reachable)}); err != nil {
			return "", err
		}
	}
	writer.Flush()

	return path, writer.Error()
}
