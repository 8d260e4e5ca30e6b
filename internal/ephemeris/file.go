package ephemeris

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"
)

// FileSource reads precomputed tropical longitudes from a local CSV
// file with a header row of "date" plus one column per planet. The row
// whose date matches the instant's UTC date is used; when no row
// matches, the first row serves as a deterministic fallback.
type FileSource struct {
	path string
}

// NewFileSource creates a CSV-backed source.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Name returns the source name.
func (s *FileSource) Name() string {
	return "csv"
}

// PositionsAt returns the row for the instant's date, or the first row.
func (s *FileSource) PositionsAt(utc time.Time) (map[string]Result, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open ephemeris csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read ephemeris csv: %w", err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%w: %s", ErrEmptySource, s.path)
	}

	header := rows[0]
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}
	dateCol, ok := col["date"]
	if !ok {
		return nil, fmt.Errorf("ephemeris csv %s: missing date column", s.path)
	}

	dateKey := utc.UTC().Format("2006-01-02")
	selected := rows[1]
	for _, row := range rows[1:] {
		if row[dateCol] == dateKey {
			selected = row
			break
		}
	}

	out := make(map[string]Result, len(Planets))
	for _, planet := range Planets {
		idx, ok := col[planet]
		if !ok || idx >= len(selected) {
			return nil, fmt.Errorf("ephemeris csv %s: missing planet %q", s.path, planet)
		}
		lon, err := strconv.ParseFloat(selected[idx], 64)
		if err != nil {
			return nil, fmt.Errorf("ephemeris csv %s: bad longitude for %s: %w", s.path, planet, err)
		}
		out[planet] = Result{Longitude: lon}
	}
	if err := validate(s.Name(), out); err != nil {
		return nil, err
	}
	return out, nil
}
