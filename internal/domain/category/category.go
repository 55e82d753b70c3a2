package category

import "fmt"

// Category is one of the three symptom groupings a question is tagged with.
type Category string

const (
	Inattention   Category = "inattention"
	Hyperactivity Category = "hyperactivity"
	Impulsivity   Category = "impulsivity"
)

var labels = map[Category]string{
	Inattention:   "주의력 부족",
	Hyperactivity: "과다행동",
	Impulsivity:   "충동성",
}

// All returns the categories in display order.
func All() []Category {
	return []Category{Inattention, Hyperactivity, Impulsivity}
}

// Label returns the display name shown to respondents.
func (c Category) Label() string {
	return labels[c]
}

func (c Category) Valid() bool {
	_, ok := labels[c]
	return ok
}

// Parse converts a wire value into a Category.
func Parse(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
