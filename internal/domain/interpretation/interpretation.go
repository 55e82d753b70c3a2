package interpretation

// Level is the qualitative risk tier for a total score.
type Level string

const (
	Normal   Level = "normal"
	Mild     Level = "mild"
	Moderate Level = "moderate"
	HighRisk Level = "high_risk"
)

// Label returns the tier name shown to respondents.
func (l Level) Label() string {
	return copyFor[l].label
}

type Interpretation struct {
	Level           Level
	Description     string
	Recommendations []string
}

// Band maps every total at or above Min (and below the next band's Min)
// to Level.
type Band struct {
	Min   int
	Level Level
}

// bands is ordered from the highest lower bound to the lowest. The last band
// has no lower limit in practice: totals below its Min still resolve to it.
var bands = []Band{
	{Min: 40, Level: HighRisk},
	{Min: 28, Level: Moderate},
	{Min: 16, Level: Mild},
	{Min: 0, Level: Normal},
}

// Bands returns the band table, highest band first.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

// Classify returns the level of the first band whose lower bound total
// reaches. Negative totals fall into the lowest band.
func Classify(total int) Level {
	for _, b := range bands {
		if total >= b.Min {
			return b.Level
		}
	}
	return bands[len(bands)-1].Level
}

// Interpret resolves a total score into its tier with the fixed copy for
// that tier.
func Interpret(total int) Interpretation {
	level := Classify(total)
	c := copyFor[level]

	recs := make([]string, len(c.recommendations))
	copy(recs, c.recommendations)

	return Interpretation{
		Level:           level,
		Description:     c.description,
		Recommendations: recs,
	}
}
