// Package normalize removes superficial variation between two English
// sentences so that they can be compared deterministically.
//
// Every pass is a pure string -> string function and is idempotent. Passes are
// always applied to both the learner answer and the expected answer.
package normalize

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Pass is a single normalization step.
type Pass func(string) string

var punctuationStripper = strings.NewReplacer(
	".", "", ",", "", "!", "", "?", "", "'", "", "\"", "",
	"’", "", "‘", "", "“", "", "”", "", "…", "",
)

var (
	contractionPattern = wordPattern(apostropheTolerant(keys(contractions)))
	compoundPattern    = regexp.MustCompile(`(?i)\b(twenty|thirty)[\s-]+(one|two|three|four|five|six|seven|eight|nine)\b`)
	numberPattern      = wordPattern(keys(numberWords))
	spellingPattern    = wordPattern(keys(britishToAmerican))
	genderPairPattern  = regexp.MustCompile(`(?i)\b(?:he|she)\s+(` + strings.Join(genderedVerbs, "|") + `)\b`)
	reflexivePattern   = regexp.MustCompile(`(?i)\b(?:himself|herself)\b`)
	possessivePattern  = regexp.MustCompile(`(?i)\b(?:his|her)\b`)

	timePhrases = splitPhrases(timeExpressions)
	adverbSet   = toSet(movableAdverbs)
)

// Fold lowercases, strips sentence punctuation and quotes, and collapses
// whitespace.
func Fold(s string) string {
	s = norm.NFC.String(s)
	// Casers carry state, so one is built per call.
	s = cases.Lower(language.English).String(s)
	s = punctuationStripper.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}

// ExpandContractions rewrites contractions into their full form. Both the
// apostrophe and the apostrophe-less spelling are recognised.
func ExpandContractions(s string) string {
	return contractionPattern.ReplaceAllStringFunc(s, func(m string) string {
		key := strings.ReplaceAll(strings.ToLower(m), "’", "'")
		if full, ok := contractions[key]; ok {
			return full
		}
		return m
	})
}

// NumbersToDigits replaces number words with digits. Compounds from 21 to 32
// are handled first so that "twenty four" becomes "24" and not "20 4".
func NumbersToDigits(s string) string {
	s = compoundPattern.ReplaceAllStringFunc(s, func(m string) string {
		parts := compoundPattern.FindStringSubmatch(m)
		n := compoundTens[strings.ToLower(parts[1])] + compoundUnits[strings.ToLower(parts[2])]
		if n > maxCompoundNumber {
			return m
		}
		return strconv.Itoa(n)
	})
	return numberPattern.ReplaceAllStringFunc(s, func(m string) string {
		return numberWords[strings.ToLower(m)]
	})
}

// AmericanSpelling maps British spellings and vocabulary onto American ones.
func AmericanSpelling(s string) string {
	return spellingPattern.ReplaceAllStringFunc(s, func(m string) string {
		return britishToAmerican[strings.ToLower(m)]
	})
}

// ReorderTimeExpressions peels known time expressions off both ends of the
// sentence and re-appends them, sorted, at the end.
func ReorderTimeExpressions(s string) string {
	words := strings.Fields(s)
	var found []string
	for {
		if p, ok := matchPrefix(words, timePhrases); ok {
			found = append(found, strings.Join(p, " "))
			words = words[len(p):]
			continue
		}
		if p, ok := matchSuffix(words, timePhrases); ok {
			found = append(found, strings.Join(p, " "))
			words = words[:len(words)-len(p)]
			continue
		}
		break
	}
	if len(found) == 0 {
		return s
	}
	sort.Strings(found)
	return strings.Join(append(words, found...), " ")
}

// ExtractAdverbs removes movable adverbs from anywhere in the sentence and
// appends them as a sorted, bracketed suffix.
func ExtractAdverbs(s string) string {
	words := strings.Fields(s)
	rest := make([]string, 0, len(words))
	var found []string
	for _, w := range words {
		lw := strings.ToLower(w)
		if _, ok := adverbSet[lw]; ok {
			found = append(found, lw)
			continue
		}
		rest = append(rest, w)
	}
	if len(found) == 0 {
		return s
	}
	sort.Strings(found)
	return strings.Join(append(rest, "["+strings.Join(found, " ")+"]"), " ")
}

// CollapseGender maps third-person singular forms onto neutral placeholders.
// Czech learners translate sentences where the gender is not marked, so
// "he is" and "she is" must compare equal.
func CollapseGender(s string) string {
	s = genderPairPattern.ReplaceAllStringFunc(s, func(m string) string {
		verb := genderPairPattern.FindStringSubmatch(m)[1]
		return personToken + " " + strings.ToLower(verb)
	})
	s = reflexivePattern.ReplaceAllString(s, themselfToken)
	return possessivePattern.ReplaceAllString(s, theirToken)
}

// Canonical is the fold chain: case and punctuation folding, contraction
// expansion, number words, then spelling.
//
// Contractions are expanded once before folding as well, so that forms such as
// "it's" are recognised before the apostrophe is stripped.
func Canonical(s string) string {
	return Chain(ExpandContractions, Fold, ExpandContractions, NumbersToDigits, AmericanSpelling)(s)
}

// Chain composes passes left to right.
func Chain(passes ...Pass) Pass {
	return func(s string) string {
		for _, p := range passes {
			s = p(s)
		}
		return s
	}
}

func wordPattern(words []string) *regexp.Regexp {
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
}

// apostropheTolerant quotes words for a pattern and lets every apostrophe
// match its typographic form too.
func apostropheTolerant(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ReplaceAll(regexp.QuoteMeta(w), "'", "['’]")
	}
	return out
}

func keys(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// splitPhrases returns the phrases as word slices, longest first.
func splitPhrases(phrases []string) [][]string {
	out := make([][]string, 0, len(phrases))
	for _, p := range phrases {
		out = append(out, strings.Fields(p))
	}
	sort.SliceStable(out, func(i, j int) bool { return len(out[i]) > len(out[j]) })
	return out
}

func matchPrefix(words []string, phrases [][]string) ([]string, bool) {
	for _, p := range phrases {
		if len(p) <= len(words) && equalFoldWords(words[:len(p)], p) {
			return p, true
		}
	}
	return nil, false
}

func matchSuffix(words []string, phrases [][]string) ([]string, bool) {
	for _, p := range phrases {
		if len(p) <= len(words) && equalFoldWords(words[len(words)-len(p):], p) {
			return p, true
		}
	}
	return nil, false
}

func equalFoldWords(a, b []string) bool {
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}
