package remedy

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Advisory is one soft-tone Lal Kitab style remedy for a planet.
type Advisory struct {
	Planet string
	Text   string
}

// Gemstone is one gemstone suggestion with a cautionary note.
type Gemstone struct {
	Planet string
	Name   string
	Note   string
}

// LoadAdvisories reads planet remedies from a CSV file with a
// "planet,advisory" header. A missing file is not an error; it yields no
// advisories.
func LoadAdvisories(path string) ([]Advisory, error) {
	rows, err := readCSV(path)
	if err != nil || rows == nil {
		return nil, err
	}

	out := make([]Advisory, 0, len(rows))
	for _, row := range rows {
		out = append(out, Advisory{Planet: row["planet"], Text: row["advisory"]})
	}
	return out, nil
}

// LoadGemstones reads gemstone suggestions from a CSV file with a
// "planet,gemstone,note" header. A missing file yields no suggestions.
func LoadGemstones(path string) ([]Gemstone, error) {
	rows, err := readCSV(path)
	if err != nil || rows == nil {
		return nil, err
	}

	out := make([]Gemstone, 0, len(rows))
	for _, row := range rows {
		out = append(out, Gemstone{Planet: row["planet"], Name: row["gemstone"], Note: row["note"]})
	}
	return out, nil
}

// AdvisoriesFor returns the remedy texts for a planet, matched
// case-insensitively.
func AdvisoriesFor(planet string, advisories []Advisory) []string {
	var out []string
	for _, a := range advisories {
		if strings.EqualFold(a.Planet, planet) {
			out = append(out, a.Text)
		}
	}
	return out
}

// GemstonesFor returns formatted gemstone suggestions for a planet.
func GemstonesFor(planet string, gemstones []Gemstone) []string {
	var out []string
	for _, g := range gemstones {
		if strings.EqualFold(g.Planet, planet) {
			out = append(out, fmt.Sprintf("%s (%s)", g.Name, g.Note))
		}
	}
	return out
}

// readCSV loads a CSV file into header-keyed rows. A missing file
// returns nil rows and no error.
func readCSV(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open remedy csv: %w", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read remedy csv %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if i < len(record) {
				row[name] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
