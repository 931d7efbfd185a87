package feedback

import (
	"math"
	"strings"
)

// difficultyKeywords is the lexicon of terms that mark a question as
// harder than its length alone suggests.
var difficultyKeywords = []string{
	"complex",
	"advanced",
	"optimize",
	"implement",
	"design",
	"algorithm",
}

// DifficultyFactor estimates question difficulty in [0.8, 1.2] from its
// length and keyword hits. A harder question inflates the mastery
// credit for a correct answer.
func DifficultyFactor(question string) float64 {
	length := math.Min(1.2, 0.8+float64(len(question))/100)

	keyword := 1.0
	lower := strings.ToLower(question)
	for _, kw := range difficultyKeywords {
		if strings.Contains(lower, kw) {
			keyword += 0.1
		}
	}

	return math.Min(1.2, length*keyword)
}
