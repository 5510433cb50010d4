// Package analyzer scores password strength against a fixed rule checklist.
package analyzer

import "unicode/utf8"

// MinLength is the length a password needs to satisfy the length rule.
const MinLength = 8

// Label is the qualitative strength of a password.
type Label string

const (
	VeryWeak Label = "Very Weak"
	Weak     Label = "Weak"
	Moderate Label = "Moderate"
	Strong   Label = "Strong"
)

// MaxScore is the score of a password that satisfies every rule.
const MaxScore = 5

// Suggestions emitted for unmet rules.
const (
	SuggestLength    = "Increase the password length to at least 8 characters."
	SuggestUppercase = "Add at least one uppercase letter."
	SuggestLowercase = "Add at least one lowercase letter."
	SuggestNumber    = "Include at least one number."
	SuggestSpecial   = "Use at least one special character (e.g., @, #, $)."
)

// Report is the result of analyzing a single password.
type Report struct {
	Score       int
	Label       Label
	Suggestions []string
}

type rule struct {
	check      func(classes) bool
	suggestion string
}

type classes struct {
	length  int
	upper   bool
	lower   bool
	digit   bool
	special bool
}

// rules are evaluated in this order; suggestions keep it.
var rules = []rule{
	{func(c classes) bool { return c.length >= MinLength }, SuggestLength},
	{func(c classes) bool { return c.upper }, SuggestUppercase},
	{func(c classes) bool { return c.lower }, SuggestLowercase},
	{func(c classes) bool { return c.digit }, SuggestNumber},
	{func(c classes) bool { return c.special }, SuggestSpecial},
}

// Analyze evaluates password against the five strength rules.
// Character classes are ASCII only: any rune outside A-Z, a-z and 0-9
// counts as special.
func Analyze(password string) Report {
	c := classify(password)

	report := Report{Suggestions: make([]string, 0, len(rules))}
	for _, r := range rules {
		if r.check(c) {
			report.Score++
			continue
		}
		report.Suggestions = append(report.Suggestions, r.suggestion)
	}
	report.Label = LabelFor(report.Score)

	return report
}

// LabelFor maps a rule score to its label. Scores outside 1-5 are Very Weak.
func LabelFor(score int) Label {
	switch score {
	case 1, 2:
		return Weak
	case 3, 4:
		return Moderate
	case 5:
		return Strong
	default:
		return VeryWeak
	}
}

func classify(password string) classes {
	c := classes{length: utf8.RuneCountInString(password)}
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.special = true
		}
	}
	return c
}
