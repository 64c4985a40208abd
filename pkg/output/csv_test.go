package output

import (
	"encoding/csv"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/projectdiscovery/pingx/pkg/sweep"
)

func TestFilename(t *testing.T) {
	date := time.Date(2025, time.June, 15, 10, 30, 0, 0, time.UTC)
	got := Filename("192.168.1.0/24", date)
	want := "15JUN2025_ping results_192.168.1.0_24.csv"
	if got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestWriteReport(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(filepath.Join(dir, "results"))
	writer.now = func() time.Time {
		return time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	}

	report := &sweep.Report{
		Results: []sweep.Result{
			{IP: net.ParseIP("10.0.0.1"), Reachable: true},
			{IP: net.ParseIP("10.0.0.2"), Reachable: false},
			{IP: net.ParseIP("10.0.0.3"), Reachable: true},
		},
		Total:     3,
		Reachable: 2,
	}

	path, err := writer.WriteReport("10.0.0.0/30", report)
	if err != nil {
		t.Fatal(err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"IP Address", "Reachable"},
		{"10.0.0.1", "true"},
		{"10.0.0.2", "false"},
		{"10.0.0.3", "true"},
	}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, row := range rows {
		for j, cell := range row {
			if cell != want[i][j] {
				t.Errorf("row %d col %d = %q, want %q", i, j, cell, want[i][j])
			}
		}
	}
}

func TestWriteReportCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")
	writer := NewWriter(dir)

	if _, err := writer.WriteReport("10.0.0.0/32", &sweep.Report{Total: 1, Results: []sweep.Result{{IP: net.ParseIP("10.0.0.0")}}}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("output directory was not created: %v", err)
	}
}
