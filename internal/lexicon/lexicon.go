// Package lexicon implements the sentiment scoring oracle: a rule-based
// polarity scorer for Brazilian Portuguese review text in the VADER/LeIA
// family. Word valences come from an embedded lexicon keyed by
// accent-folded stems, adjusted for negation and intensity boosters, and
// collapsed into a single compound score in [-1, 1].
//
// The analyzer is loaded once and is safe for concurrent use; scoring is
// pure and deterministic.
package lexicon

import (
	_ "embed"
	"errors"
	"math"
	"strconv"
	"strings"
)

//go:embed lexicon.txt
var rawLexicon string

// ErrEmptyLexicon indicates the embedded lexicon produced no entries.
// Classification cannot proceed without a working scorer.
var ErrEmptyLexicon = errors.New("sentiment lexicon is empty")

// normalizationAlpha dampens the compound score the same way VADER does:
// compound = sum / sqrt(sum^2 + alpha).
const normalizationAlpha = 15.0

// negationScalar flips and dampens a valence preceded by a negator.
const negationScalar = -0.74

// boosterIncrement is the base intensity added by a booster word, signed
// to follow the boosted word's polarity.
const boosterIncrement = 0.293

// negationLookback is how many preceding tokens are checked for negators.
const negationLookback = 2

var negators = map[string]bool{
	"nao":    true,
	"nunca":  true,
	"nem":    true,
	"jamais": true,
	"sem":    true,
}

var boosters = map[string]float64{
	"muito":         boosterIncrement,
	"muitissimo":    boosterIncrement * 1.5,
	"super":         boosterIncrement,
	"extremamente":  boosterIncrement * 1.5,
	"totalmente":    boosterIncrement,
	"completamente": boosterIncrement,
	"bem":           boosterIncrement * 0.5,
	"bastante":      boosterIncrement,
	"demais":        boosterIncrement,
	"pouco":         -boosterIncrement,
	"meio":          -boosterIncrement * 0.5,
	"levemente":     -boosterIncrement,
}

// Analyzer scores text against the embedded polarity lexicon.
type Analyzer struct {
	valences map[string]float64
}

// New builds the analyzer from the embedded lexicon. An empty or
// unparseable lexicon is a configuration error; callers must fail fast
// rather than classify with a silent zero scorer.
func New() (*Analyzer, error) {
	valences := parseLexicon(rawLexicon)
	if len(valences) == 0 {
		return nil, ErrEmptyLexicon
	}
	return &Analyzer{valences: valences}, nil
}

// parseLexicon parses tab-separated "term\tvalence" lines, skipping blanks
// and # comments. Malformed lines are dropped, not fatal.
func parseLexicon(raw string) map[string]float64 {
	valences := make(map[string]float64, 128)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		term, value, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		valence, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			continue
		}
		valences[strings.TrimSpace(term)] = valence
	}
	return valences
}

// Compound returns the aggregate polarity of text in [-1, 1]. Text is
// expected in the classification normalization (lowercase, accent-folded);
// tokens are whitespace-split. Empty text scores 0.
func (a *Analyzer) Compound(text string) float64 {
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	for i, token := range tokens {
		valence, ok := a.valences[token]
		if !ok {
			continue
		}

		valence += boost(tokens, i, valence)
		if negated(tokens, i) {
			valence *= negationScalar
		}
		sum += valence
	}

	if sum == 0 {
		return 0
	}
	return sum / math.Sqrt(sum*sum+normalizationAlpha)
}

// boost returns the intensity adjustment contributed by booster words
// immediately before tokens[i], signed to match the word's polarity.
func boost(tokens []string, i int, valence float64) float64 {
	if i == 0 {
		return 0
	}
	increment, ok := boosters[tokens[i-1]]
	if !ok {
		return 0
	}
	if valence < 0 {
		return -increment
	}
	return increment
}

// negated reports whether a negator appears within negationLookback
// tokens before tokens[i].
func negated(tokens []string, i int) bool {
	for back := 1; back <= negationLookback; back++ {
		j := i - back
		if j < 0 {
			break
		}
		if negators[tokens[j]] {
			return true
		}
	}
	return false
}
