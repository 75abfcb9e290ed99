package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"punctuation and case", "  Hello,   World!  ", "hello world"},
		{"apostrophe", "I'm here.", "im here"},
		{"typographic quotes", "“I’m” here…", "im here"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Fold(tt.input))
		})
	}
}

func TestExpandContractions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I'm happy", "i am happy"},
		{"I don’t know", "I do not know"},
		{"dont go", "do not go"},
		{"let's eat", "let us eat"},
		{"it isn't here", "it is not here"},
		{"its tail", "its tail"},
		{"him", "him"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandContractions(tt.input))
		})
	}
}

func TestNumbersToDigits(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"twenty four apples", "24 apples"},
		{"Twenty-Four hours", "24 hours"},
		{"thirty two", "32"},
		{"thirty five", "30 5"},
		{"one hundred", "1 100"},
		{"zero", "0"},
		{"someone", "someone"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, NumbersToDigits(tt.input))
		})
	}
}

func TestAmericanSpelling(t *testing.T) {
	assert.Equal(t, "My favorite color", AmericanSpelling("My favourite Colour"))
	assert.Equal(t, "we live in a apartment", AmericanSpelling("we live in a flat"))
	assert.Equal(t, "traveling to the center", AmericanSpelling("travelling to the centre"))
	assert.Equal(t, "flatten", AmericanSpelling("flatten"))
}

func TestReorderTimeExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"tomorrow i will go", "i will go tomorrow"},
		{"this week she is working", "she is working this week"},
		{"she is working this week", "she is working this week"},
		{"always i am here right now", "i am here always right now"},
		{"i am here", "i am here"},
		{"today", "today"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ReorderTimeExpressions(tt.input))
		})
	}
}

func TestExtractAdverbs(t *testing.T) {
	assert.Equal(t, "he had fallen asleep [already]", ExtractAdverbs("he had already fallen asleep"))
	assert.Equal(t, "he had fallen asleep [already]", ExtractAdverbs("he had fallen asleep already"))
	assert.Equal(t, "I want [just really]", ExtractAdverbs("I really just want"))
	assert.Equal(t, "nothing moves here", ExtractAdverbs("nothing moves here"))
}

func TestCollapseGender(t *testing.T) {
	assert.Equal(t, "PERSON is tired and PERSON can go", CollapseGender("She is tired and he can go"))
	assert.Equal(t, "THEIR book and THEMSELF", CollapseGender("his book and herself"))
	assert.Equal(t, "there is a shelf", CollapseGender("there is a shelf"))
}

func TestPassesAreIdempotent(t *testing.T) {
	passes := map[string]Pass{
		"Fold":                   Fold,
		"ExpandContractions":     ExpandContractions,
		"NumbersToDigits":        NumbersToDigits,
		"AmericanSpelling":       AmericanSpelling,
		"ReorderTimeExpressions": ReorderTimeExpressions,
		"ExtractAdverbs":         ExtractAdverbs,
		"CollapseGender":         CollapseGender,
		"Canonical":              Canonical,
	}
	inputs := []string{
		"",
		"This week, she is already working!",
		"I'm not sure he's ready right now",
		"twenty four apples and thirty five pears",
		"now she is right",
		"Tomorrow I will really travel to the centre",
		"He had already fallen asleep",
		"his colour is grey",
		"  lots   of   spaces  ",
	}
	for name, pass := range passes {
		for _, in := range inputs {
			once := pass(in)
			assert.Equal(t, once, pass(once), "%s is not idempotent for %q", name, in)
		}
	}
}

func TestFullEquivalences(t *testing.T) {
	pairs := []struct {
		name string
		a, b string
	}{
		{"time expression position", "this week I am working", "I am working this week"},
		{"adverb position", "He had already fallen asleep", "He had fallen asleep already"},
		{"gender", "he is tired", "she is tired"},
		{"contraction", "I'm happy", "I am happy"},
		{"contraction without apostrophe", "dont go", "do not go"},
		{"spelling", "I love the colour grey", "I love the color gray"},
		{"numbers", "twenty four apples", "24 apples"},
		{"it is", "It's cold.", "it is cold"},
	}
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, Full(tt.a), Full(tt.b))
		})
	}
}

func TestAnalyze(t *testing.T) {
	v := Analyze("This week she's ALREADY working.")

	assert.Equal(t, "this week shes already working", v.Folded)
	assert.Equal(t, "this week she is already working", v.Canonical)
	assert.Equal(t, "she is already working this week", v.TimeOrdered)
	assert.Equal(t, "she is working this week [already]", v.AdverbOrdered)
	assert.Equal(t, "this week PERSON is already working", v.GenderNeutral)
	assert.Equal(t, "PERSON is working this week [already]", v.Combined)
}
