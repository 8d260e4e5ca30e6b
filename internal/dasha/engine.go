package dasha

import (
	"errors"
	"fmt"
	"time"

	"github.com/rajveda/jyotish/internal/model"
)

// Order is the fixed Vimshottari lord cycle.
var Order = []string{"Ketu", "Venus", "Sun", "Moon", "Mars", "Rahu", "Jupiter", "Saturn", "Mercury"}

// Years holds each lord's share of the 120-year cycle.
var Years = map[string]int{
	"Ketu":    7,
	"Venus":   20,
	"Sun":     6,
	"Moon":    10,
	"Mars":    7,
	"Rahu":    18,
	"Jupiter": 16,
	"Saturn":  19,
	"Mercury": 17,
}

// daysPerYear converts sidereal years to approximate days.
const daysPerYear = 365.2425

// DefaultSpanYears is the full Vimshottari cycle length.
const DefaultSpanYears = 120

// ErrUnknownLord signals a starting lord outside the nine-lord cycle.
var ErrUnknownLord = errors.New("unknown dasha lord")

// Engine generates and queries Vimshottari period timelines.
type Engine struct{}

// NewEngine creates a new dasha engine.
func NewEngine() *Engine {
	return &Engine{}
}

func yearsToDays(years float64) float64 {
	return years * daysPerYear
}

func daysDuration(days float64) time.Duration {
	return time.Duration(days * 24 * float64(time.Hour))
}

// Generate builds the flat maha/antar/pratyantar timeline starting at
// startLord from the birth instant. Child durations are exact 1/120
// proportions of their parent. The outer loop walks one full rotation of
// the lord cycle and stops early once elapsed time passes spanYears, so
// the timeline may overshoot the requested span by the tail of the last
// emitted maha period.
func (e *Engine) Generate(startLord string, birthUTC time.Time, spanYears int) ([]model.DashaPeriod, error) {
	startIdx := -1
	for i, lord := range Order {
		if lord == startLord {
			startIdx = i
			break
		}
	}
	if startIdx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLord, startLord)
	}

	birthUTC = birthUTC.UTC()
	cursor := birthUTC

	var periods []model.DashaPeriod

	// Rotate the cycle so it begins at the starting lord. Inner levels
	// always walk the unrotated order.
	for offset := range Order {
		mahaLord := Order[(startIdx+offset)%len(Order)]
		mahaYears := float64(Years[mahaLord])
		mahaEnd := cursor.Add(daysDuration(yearsToDays(mahaYears)))
		mahaID := fmt.Sprintf("maha-%s-%s", mahaLord, cursor.Format("2006-01-02"))
		periods = append(periods, model.DashaPeriod{
			ID:        mahaID,
			Level:     model.LevelMaha,
			Lord:      mahaLord,
			Start:     cursor,
			End:       mahaEnd,
			ParentIDs: []string{},
		})

		antarCursor := cursor
		for _, antarLord := range Order {
			antarYears := mahaYears * float64(Years[antarLord]) / 120.0
			antarEnd := antarCursor.Add(daysDuration(yearsToDays(antarYears)))
			antarID := fmt.Sprintf("antar-%s-%s-%s", mahaLord, antarLord, antarCursor.Format("2006-01-02"))
			periods = append(periods, model.DashaPeriod{
				ID:        antarID,
				Level:     model.LevelAntar,
				Lord:      antarLord,
				Start:     antarCursor,
				End:       antarEnd,
				ParentIDs: []string{mahaID},
			})

			pratyantarCursor := antarCursor
			for _, pratyantarLord := range Order {
				pratyantarYears := antarYears * float64(Years[pratyantarLord]) / 120.0
				pratyantarEnd := pratyantarCursor.Add(daysDuration(yearsToDays(pratyantarYears)))
				pratyantarID := fmt.Sprintf("pratyantar-%s-%s-%s-%s",
					mahaLord, antarLord, pratyantarLord, pratyantarCursor.Format("2006-01-02"))
				periods = append(periods, model.DashaPeriod{
					ID:        pratyantarID,
					Level:     model.LevelPratyantar,
					Lord:      pratyantarLord,
					Start:     pratyantarCursor,
					End:       pratyantarEnd,
					ParentIDs: []string{mahaID, antarID},
				})
				pratyantarCursor = pratyantarEnd
			}

			antarCursor = antarEnd
		}

		cursor = mahaEnd
		if cursor.Sub(birthUTC) > daysDuration(yearsToDays(float64(spanYears))) {
			break
		}
	}

	return periods, nil
}

// Locate returns the active maha, antar, and pratyantar periods for an
// instant, using closed intervals. Selections are ancestry-linked: an
// antar is only chosen if it names the chosen maha as a parent, a
// pratyantar only if it names both. When a level has no linked match it
// returns nil, and so do all deeper levels.
func (e *Engine) Locate(periods []model.DashaPeriod, t time.Time) (maha, antar, pratyantar *model.DashaPeriod) {
	for i := range periods {
		p := &periods[i]
		if p.Level == model.LevelMaha && p.Contains(t) {
			maha = p
			break
		}
	}
	if maha == nil {
		return nil, nil, nil
	}
	for i := range periods {
		p := &periods[i]
		if p.Level == model.LevelAntar && p.Contains(t) && p.HasParent(maha.ID) {
			antar = p
			break
		}
	}
	if antar == nil {
		return maha, nil, nil
	}
	for i := range periods {
		p := &periods[i]
		if p.Level == model.LevelPratyantar && p.Contains(t) && p.HasParent(maha.ID) && p.HasParent(antar.ID) {
			pratyantar = p
			break
		}
	}
	return maha, antar, pratyantar
}

// StartLordForNakshatra maps a Moon nakshatra index (0..26) to the
// Vimshottari starting lord.
func StartLordForNakshatra(nakshatraIndex int) string {
	return Order[((nakshatraIndex%9)+9)%9]
}
