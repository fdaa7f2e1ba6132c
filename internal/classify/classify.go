// Package classify scores note text against a fixed set of subject
// categories using a weighted keyword table. It never fails: text matching
// nothing is classified as General with all-zero scores.
package classify

import "strings"

// Category is a subject domain a note can belong to. The declaration order
// is also the tie-breaking priority when two categories score equally.
type Category int

const (
	DataStructures Category = iota
	Algorithms
	Mathematics
	Physics
	Chemistry
	Biology
	Business
	General
)

var categoryNames = map[Category]string{
	DataStructures: "data_structures",
	Algorithms:     "algorithms",
	Mathematics:    "mathematics",
	Physics:        "physics",
	Chemistry:      "chemistry",
	Biology:        "biology",
	Business:       "business",
	General:        "general",
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return "general"
}

// CategoryFromName resolves a profile-file category name.
func CategoryFromName(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return c, true
		}
	}
	return General, false
}

// Pattern is one scored keyword, phrase or symbol. Patterns containing any
// letter are matched case-insensitively; pure symbol patterns ("=", "∫")
// are matched verbatim so code samples and formulas score raw.
type Pattern struct {
	Match  string `yaml:"match"`
	Weight int    `yaml:"weight"`
}

// Table maps categories to their scored patterns. Scoring logic never
// hard-codes a keyword; changing the domain vocabulary is a data edit.
type Table map[Category][]Pattern

// Result is the outcome of classifying one note.
type Result struct {
	Category Category
	Scores   map[Category]int
}

// Classify scores text with the default table.
func Classify(text string) Result {
	return ClassifyWith(DefaultTable(), text)
}

// ClassifyWith sums weighted pattern hits per category and picks the
// arg-max, breaking ties by category declaration order. All-zero scores
// fall through to General.
func ClassifyWith(table Table, text string) Result {
	lower := strings.ToLower(text)

	scores := make(map[Category]int, len(categoryNames))
	for c := DataStructures; c <= General; c++ {
		scores[c] = 0
	}
	for cat, patterns := range table {
		total := 0
		for _, p := range patterns {
			if p.Match == "" || p.Weight <= 0 {
				continue
			}
			if hasLetter(p.Match) {
				total += strings.Count(lower, strings.ToLower(p.Match)) * p.Weight
			} else {
				total += strings.Count(text, p.Match) * p.Weight
			}
		}
		scores[cat] = total
	}

	best := General
	bestScore := 0
	for c := DataStructures; c <= General; c++ {
		if scores[c] > bestScore {
			best = c
			bestScore = scores[c]
		}
	}
	return Result{Category: best, Scores: scores}
}

func hasLetter(s string) bool {
	for _, r := range s {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}
