package yoga

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rajveda/jyotish/internal/model"
)

// Rule is one table-driven yoga definition. Condition is either
// "same_house" (all listed planets share a house) or "house_<n>" (all
// listed planets occupy house n).
type Rule struct {
	Name      string   `yaml:"name"`
	Planets   []string `yaml:"planets"`
	Condition string   `yaml:"condition"`
	Meaning   string   `yaml:"meaning,omitempty"`
}

// LoadRules reads yoga rules from a YAML file. A missing file is not an
// error; it yields no rules, and chart summaries simply report none.
func LoadRules(path string) ([]Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read yoga rules: %w", err)
	}

	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parse yoga rules: %w", err)
	}
	return rules, nil
}

// Detect returns the rules whose condition holds in the chart. Rules
// naming planets absent from the chart never match.
func Detect(chart *model.Chart, rules []Rule) []Rule {
	placements := make(map[string]model.PlanetPosition, len(chart.PlanetPositions))
	for _, p := range chart.PlanetPositions {
		placements[p.PlanetName] = p
	}

	var found []Rule
	for _, rule := range rules {
		if len(rule.Planets) == 0 {
			continue
		}
		houses := make(map[int]bool)
		missing := false
		for _, planet := range rule.Planets {
			p, ok := placements[planet]
			if !ok {
				missing = true
				break
			}
			houses[p.House] = true
		}
		if missing {
			continue
		}

		switch {
		case rule.Condition == "same_house":
			if len(houses) == 1 {
				found = append(found, rule)
			}
		case strings.HasPrefix(rule.Condition, "house_"):
			target, err := strconv.Atoi(strings.TrimPrefix(rule.Condition, "house_"))
			if err != nil {
				continue
			}
			if len(houses) == 1 && houses[target] {
				found = append(found, rule)
			}
		}
	}
	return found
}

// Names extracts the rule names, for narration.
func Names(rules []Rule) []string {
	names := make([]string, 0, len(rules))
	for _, r := range rules {
		names = append(names, r.Name)
	}
	return names
}
