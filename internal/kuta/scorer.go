package kuta

import (
	"errors"
	"fmt"
	"math"

	"github.com/rajveda/jyotish/internal/model"
	"github.com/rajveda/jyotish/internal/vedic"
)

// Max holds the fixed per-factor maxima. The eight values sum to 36.
var Max = map[string]float64{
	"Varna":        1,
	"Vashya":       2,
	"Tara":         3,
	"Yoni":         4,
	"Graha Maitri": 5,
	"Gana":         6,
	"Bhakoot":      7,
	"Nadi":         8,
}

// signLords maps each sign to its ruling planet.
var signLords = map[string]string{
	"Aries":       "Mars",
	"Taurus":      "Venus",
	"Gemini":      "Mercury",
	"Cancer":      "Moon",
	"Leo":         "Sun",
	"Virgo":       "Mercury",
	"Libra":       "Venus",
	"Scorpio":     "Mars",
	"Sagittarius": "Jupiter",
	"Capricorn":   "Saturn",
	"Aquarius":    "Saturn",
	"Pisces":      "Jupiter",
}

// friendship classifies planet relationships for Graha Maitri.
type friendship struct {
	friends map[string]bool
	neutral map[string]bool
}

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

var friendships = map[string]friendship{
	"Sun":     {friends: set("Moon", "Mars", "Jupiter"), neutral: set("Mercury")},
	"Moon":    {friends: set("Sun", "Mercury"), neutral: set("Mars", "Jupiter", "Venus", "Saturn")},
	"Mars":    {friends: set("Sun", "Moon", "Jupiter"), neutral: set("Venus", "Saturn")},
	"Mercury": {friends: set("Sun", "Venus"), neutral: set("Mars", "Jupiter", "Saturn")},
	"Jupiter": {friends: set("Sun", "Moon", "Mars"), neutral: set("Saturn")},
	"Venus":   {friends: set("Mercury", "Saturn"), neutral: set("Mars", "Jupiter")},
	"Saturn":  {friends: set("Mercury", "Venus"), neutral: set("Jupiter")},
}

// varnaBySign maps each sign to its caste tier.
var varnaBySign = map[string]string{
	"Aries":       "Kshatriya",
	"Taurus":      "Vaishya",
	"Gemini":      "Shudra",
	"Cancer":      "Brahmin",
	"Leo":         "Kshatriya",
	"Virgo":       "Vaishya",
	"Libra":       "Shudra",
	"Scorpio":     "Brahmin",
	"Sagittarius": "Kshatriya",
	"Capricorn":   "Vaishya",
	"Aquarius":    "Shudra",
	"Pisces":      "Brahmin",
}

var varnaRank = map[string]int{"Shudra": 1, "Vaishya": 2, "Kshatriya": 3, "Brahmin": 4}

// vashyaBySign maps each sign to its dominion group.
var vashyaBySign = map[string]string{
	"Aries":       "Chatushpada",
	"Taurus":      "Chatushpada",
	"Gemini":      "Manava",
	"Cancer":      "Jalachara",
	"Leo":         "Vanachara",
	"Virgo":       "Manava",
	"Libra":       "Manava",
	"Scorpio":     "Keeta",
	"Sagittarius": "Chatushpada",
	"Capricorn":   "Chatushpada",
	"Aquarius":    "Manava",
	"Pisces":      "Jalachara",
}

var ganaCycle = []string{"Deva", "Manushya", "Rakshasa"}
var nadiCycle = []string{"Adi", "Madhya", "Antya"}

var yoniGroups = []string{
	"Horse", "Elephant", "Sheep", "Serpent", "Dog", "Cat", "Rat",
	"Cow", "Buffalo", "Tiger", "Hare", "Monkey", "Mongoose", "Lion",
}

// ErrMissingMoon signals a chart without a usable Moon placement.
var ErrMissingMoon = errors.New("chart is missing Moon placement")

// Scorer computes Ashta Kuta compatibility between two charts.
type Scorer struct{}

// NewScorer creates a new kuta scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Score computes the eight kuta sub-scores from both charts' Moon sign
// and Moon nakshatra, clamps each into its factor range, and returns the
// aggregate result with a fixed advisory summary.
func (s *Scorer) Score(chartA, chartB *model.Chart) (*model.CompatibilityResult, error) {
	moonA, ok := chartA.Moon()
	if !ok || chartA.MoonSign == "" {
		return nil, fmt.Errorf("%w: chart %s", ErrMissingMoon, chartA.ID)
	}
	moonB, ok := chartB.Moon()
	if !ok || chartB.MoonSign == "" {
		return nil, fmt.Errorf("%w: chart %s", ErrMissingMoon, chartB.ID)
	}
	nakA := vedic.NakshatraIndex(moonA.NakshatraName)
	nakB := vedic.NakshatraIndex(moonB.NakshatraName)
	if nakA < 0 || nakB < 0 {
		return nil, fmt.Errorf("%w: unknown nakshatra", ErrMissingMoon)
	}

	per := map[string]float64{
		"Varna":        s.varna(chartA.MoonSign, chartB.MoonSign),
		"Vashya":       s.vashya(chartA.MoonSign, chartB.MoonSign),
		"Tara":         s.tara(nakA, nakB),
		"Yoni":         s.yoni(nakA, nakB),
		"Graha Maitri": s.grahaMaitri(chartA.MoonSign, chartB.MoonSign),
		"Gana":         s.gana(nakA, nakB),
		"Bhakoot":      s.bhakoot(chartA.MoonSign, chartB.MoonSign),
		"Nadi":         s.nadi(nakA, nakB),
	}

	// Clamp into [0, max]; each formula is already in range by
	// construction.
	total := 0.0
	for kuta, max := range Max {
		per[kuta] = math.Min(math.Max(per[kuta], 0), max)
		total += per[kuta]
	}
	total = math.Round(total*100) / 100

	summary := fmt.Sprintf(
		"Ashta Kuta score is %v/36. Use this as one compatibility lens, then verify with full chart "+
			"matching, dasha synchronization, and practical life values before making decisions.", total)

	return &model.CompatibilityResult{
		ProfileAID:     chartA.ID,
		ProfileBID:     chartB.ID,
		TotalScore36:   total,
		PerKutaScores:  per,
		TextualSummary: summary,
	}, nil
}

// varna scores 1 when A's caste tier does not exceed B's. Direction
// matters: the rule is intentionally asymmetric.
func (s *Scorer) varna(signA, signB string) float64 {
	if varnaRank[varnaBySign[signA]] <= varnaRank[varnaBySign[signB]] {
		return 1
	}
	return 0
}

func (s *Scorer) vashya(signA, signB string) float64 {
	if vashyaBySign[signA] == vashyaBySign[signB] {
		return 2
	}
	return 1
}

// tara checks forward and backward nakshatra counts reduced mod 9;
// remainders 0, 3, and 5 are inauspicious.
func (s *Scorer) tara(nakA, nakB int) float64 {
	d1 := ((nakB-nakA)%27+27)%27 + 1
	d2 := ((nakA-nakB)%27+27)%27 + 1
	bad := map[int]bool{0: true, 3: true, 5: true}
	goodA := !bad[d1%9]
	goodB := !bad[d2%9]
	switch {
	case goodA && goodB:
		return 3
	case goodA || goodB:
		return 1.5
	default:
		return 0
	}
}

func (s *Scorer) yoni(nakA, nakB int) float64 {
	if yoniGroups[nakA%len(yoniGroups)] == yoniGroups[nakB%len(yoniGroups)] {
		return 4
	}
	return 2
}

func (s *Scorer) grahaMaitri(signA, signB string) float64 {
	lordA := signLords[signA]
	lordB := signLords[signB]
	if lordA == lordB {
		return 5
	}
	if friendships[lordA].friends[lordB] && friendships[lordB].friends[lordA] {
		return 5
	}
	if friendships[lordA].neutral[lordB] && friendships[lordB].neutral[lordA] {
		return 3
	}
	return 1
}

// gana applies the literal pair table: same class 6, Deva/Manushya 5,
// Manushya/Rakshasa 1, anything else 0.
func (s *Scorer) gana(nakA, nakB int) float64 {
	ganaA := ganaCycle[nakA%3]
	ganaB := ganaCycle[nakB%3]
	switch {
	case ganaA == ganaB:
		return 6
	case isPair(ganaA, ganaB, "Deva", "Manushya"):
		return 5
	case isPair(ganaA, ganaB, "Manushya", "Rakshasa"):
		return 1
	default:
		return 0
	}
}

func isPair(a, b, x, y string) bool {
	return (a == x && b == y) || (a == y && b == x)
}

func (s *Scorer) bhakoot(signA, signB string) float64 {
	a := vedic.SignIndex(signA)
	b := vedic.SignIndex(signB)
	distance := ((b-a)%12+12)%12 + 1
	switch distance {
	case 2, 6, 8, 12:
		return 0
	}
	return 7
}

func (s *Scorer) nadi(nakA, nakB int) float64 {
	if nadiCycle[nakA%3] == nadiCycle[nakB%3] {
		return 0
	}
	return 8
}
