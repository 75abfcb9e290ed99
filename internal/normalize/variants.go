package normalize

// Variants holds every normalized form of one sentence that the decision
// lanes compare.
type Variants struct {
	Folded        string `json:"folded"`
	Canonical     string `json:"canonical"`
	TimeOrdered   string `json:"time_ordered"`
	AdverbOrdered string `json:"adverb_ordered"`
	GenderNeutral string `json:"gender_neutral"`
	Combined      string `json:"combined"`
}

// Analyze builds all variants of s.
func Analyze(s string) Variants {
	canonical := Canonical(s)
	timeOrdered := ReorderTimeExpressions(canonical)
	return Variants{
		Folded:        Fold(s),
		Canonical:     canonical,
		TimeOrdered:   timeOrdered,
		AdverbOrdered: ExtractAdverbs(timeOrdered),
		GenderNeutral: CollapseGender(canonical),
		Combined:      CollapseGender(ExtractAdverbs(timeOrdered)),
	}
}

// Full is the most aggressive normalization: the fold chain followed by time
// reordering, adverb extraction and gender collapsing.
func Full(s string) string {
	return Analyze(s).Combined
}
