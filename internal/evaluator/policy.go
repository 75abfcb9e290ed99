package evaluator

import (
	"slices"
	"strings"

	"lingo-practice/internal/normalize"
	"lingo-practice/internal/similarity"
)

// Outcome is the terminal state of the decision lanes.
type Outcome int

const (
	Rejected Outcome = iota
	Accepted
	DeferToJudge
)

func (o Outcome) String() string {
	switch o {
	case Accepted:
		return "accepted"
	case DeferToJudge:
		return "defer_to_judge"
	default:
		return "rejected"
	}
}

// Lane identifies the comparison step that produced a decision.
type Lane int

const (
	LaneWordOrder Lane = iota
	LaneExactFold
	LaneCanonical
	LaneTimeOrder
	LaneAdverbOrder
	LaneGenderNeutral
	LaneCombined
	LaneHighSimilarity
	LaneUncertain
	LaneLongAnswer
	LaneNoMatch
)

var laneNames = [...]string{
	LaneWordOrder:      "word_order",
	LaneExactFold:      "exact_fold",
	LaneCanonical:      "canonical",
	LaneTimeOrder:      "time_order",
	LaneAdverbOrder:    "adverb_order",
	LaneGenderNeutral:  "gender_neutral",
	LaneCombined:       "combined",
	LaneHighSimilarity: "high_similarity",
	LaneUncertain:      "uncertain",
	LaneLongAnswer:     "long_answer",
	LaneNoMatch:        "no_match",
}

func (l Lane) String() string {
	if l < 0 || int(l) >= len(laneNames) {
		return "unknown"
	}
	return laneNames[l]
}

// Thresholds are the tunable constants of the similarity lanes.
type Thresholds struct {
	// Accept is the similarity at or above which an answer is accepted.
	Accept float64
	// Defer is the similarity at or above which the judge is consulted.
	Defer float64
	// MinDeferTokens is the answer length, in words, that earns a judge call
	// even when similarity is low.
	MinDeferTokens int
}

// DefaultThresholds returns the values the lanes were tuned with.
func DefaultThresholds() Thresholds {
	return Thresholds{Accept: 0.90, Defer: 0.70, MinDeferTokens: 3}
}

// Decision is the result of running the deterministic lanes.
type Decision struct {
	Outcome    Outcome
	Lane       Lane
	Similarity float64
	User       normalize.Variants
	Expected   normalize.Variants
}

// Policy orders the normalization variants and thresholds into lanes.
type Policy struct {
	thresholds Thresholds
}

// NewPolicy creates a Policy with the given thresholds.
func NewPolicy(t Thresholds) *Policy {
	return &Policy{thresholds: t}
}

// Thresholds returns the policy's thresholds.
func (p *Policy) Thresholds() Thresholds {
	return p.thresholds
}

// Decide runs lanes 1-10 on a typed answer. The first lane that matches wins.
func (p *Policy) Decide(userAnswer, expected string) Decision {
	d := Decision{
		User:     normalize.Analyze(userAnswer),
		Expected: normalize.Analyze(expected),
	}
	u, e := d.User, d.Expected

	exact := []struct {
		lane       Lane
		user, want string
	}{
		{LaneExactFold, u.Folded, e.Folded},
		{LaneCanonical, u.Canonical, e.Canonical},
		{LaneTimeOrder, u.TimeOrdered, e.TimeOrdered},
		{LaneAdverbOrder, u.AdverbOrdered, e.AdverbOrdered},
		{LaneGenderNeutral, u.GenderNeutral, e.GenderNeutral},
		{LaneCombined, u.Combined, e.Combined},
	}
	for _, c := range exact {
		if c.user == c.want {
			d.Outcome, d.Lane, d.Similarity = Accepted, c.lane, 1
			return d
		}
	}

	d.Similarity = max(
		similarity.Score(u.Canonical, e.Canonical),
		similarity.Score(u.Combined, e.Combined),
	)
	switch {
	case d.Similarity >= p.thresholds.Accept:
		d.Outcome, d.Lane = Accepted, LaneHighSimilarity
	case d.Similarity >= p.thresholds.Defer:
		d.Outcome, d.Lane = DeferToJudge, LaneUncertain
	case len(strings.Fields(u.Folded)) >= p.thresholds.MinDeferTokens:
		d.Outcome, d.Lane = DeferToJudge, LaneLongAnswer
	default:
		d.Outcome, d.Lane = Rejected, LaneNoMatch
	}
	return d
}

// DecideWordOrder checks the word-assembly special case: the learner picked
// exactly the expected words but in another order. Only the judge can tell
// whether that order is grammatical, so such answers are never auto-accepted.
// It reports false when the case does not apply.
func (p *Policy) DecideWordOrder(selected []string, expected string) (Decision, bool) {
	userWords := strings.Fields(normalize.Fold(strings.Join(selected, " ")))
	expectedWords := strings.Fields(normalize.Fold(expected))
	if slices.Equal(userWords, expectedWords) {
		return Decision{}, false
	}
	if !slices.Equal(sortedCopy(userWords), sortedCopy(expectedWords)) {
		return Decision{}, false
	}

	joined := strings.Join(selected, " ")
	return Decision{
		Outcome:    DeferToJudge,
		Lane:       LaneWordOrder,
		Similarity: similarity.Score(strings.Join(userWords, " "), strings.Join(expectedWords, " ")),
		User:       normalize.Analyze(joined),
		Expected:   normalize.Analyze(expected),
	}, true
}

func sortedCopy(words []string) []string {
	out := slices.Clone(words)
	slices.Sort(out)
	return out
}
