package scoring

import (
	"strings"

	"github.com/abhisek/sleepcheck/internal/questionnaire"
)

// Rule adjusts category scores when an answer contains Pattern.
// An empty Deltas map marks an explicitly neutral answer.
type Rule struct {
	Pattern string
	Deltas  map[Category]int
}

// Matches reports whether answer contains the rule's pattern.
func (r Rule) Matches(answer string) bool {
	return strings.Contains(answer, r.Pattern)
}

// SlotRules returns the ordered rules for slot. Rules are evaluated
// first-match-wins, so order matters where patterns overlap
// (e.g. "15-30 minutes" appears in both onset and device answers, but
// rules are only ever applied to their own slot).
func SlotRules(slot questionnaire.Slot) []Rule {
	return heuristicRules[slot]
}

// The figures are deliberately asymmetric; they are fixed constants, not a
// formula.
var heuristicRules = map[questionnaire.Slot][]Rule{
	questionnaire.SlotDuration: {
		{"7-8 hours", map[Category]int{Duration: 25, Consistency: 10}},
		{"More than 8 hours", map[Category]int{Duration: 15, Consistency: 5}},
		{"5-6 hours", map[Category]int{Duration: -10, Consistency: -5}},
		{"Less than 5 hours", map[Category]int{Duration: -25, Consistency: -15}},
	},
	questionnaire.SlotOnset: {
		{"Less than 5 minutes", map[Category]int{Quality: 15, Habits: 10}},
		{"5-15 minutes", map[Category]int{Quality: 10, Habits: 5}},
		{"15-30 minutes", nil},
		{"30-60 minutes", map[Category]int{Quality: -10, Habits: -10}},
		{"More than 60 minutes", map[Category]int{Quality: -20, Habits: -20}},
	},
	questionnaire.SlotWaking: {
		{"Not at all", map[Category]int{Quality: 20, Environment: 10}},
		{"Once briefly", map[Category]int{Quality: 10, Environment: 5}},
		{"2-3 times", map[Category]int{Quality: -10, Environment: -5}},
		{"More than 3 times", map[Category]int{Quality: -20, Environment: -10}},
		{"Awake for extended", map[Category]int{Quality: -30, Environment: -15}},
	},
	questionnaire.SlotMorning: {
		{"Very refreshed", map[Category]int{Quality: 20}},
		{"Mostly rested", map[Category]int{Quality: 10}},
		{"Somewhat tired", nil},
		{"Very tired", map[Category]int{Quality: -15}},
		{"Exhausted", map[Category]int{Quality: -25}},
	},
	questionnaire.SlotDevices: {
		{"No devices", map[Category]int{Habits: 20, Environment: 10}},
		{"Brief check only", map[Category]int{Habits: 10, Environment: 5}},
		{"15-30 minutes", map[Category]int{Habits: -5, Environment: -5}},
		{"30-60 minutes", map[Category]int{Habits: -15, Environment: -10}},
		{"Used until falling asleep", map[Category]int{Habits: -25, Environment: -15}},
	},
}

// MatchRule returns the first rule in rules that matches answer.
func MatchRule(rules []Rule, answer string) (Rule, bool) {
	for _, r := range rules {
		if r.Matches(answer) {
			return r, true
		}
	}
	return Rule{}, false
}

// Score maps an answer set to category scores. It is pure: every category
// starts at Baseline, each answered slot applies at most one rule, and the
// result is clamped to [0,100]. Missing or unmatched answers leave the
// baseline untouched.
func Score(answers questionnaire.AnswerSet) CategoryScores {
	scores := BaselineScores()

	for slot := questionnaire.SlotDuration; slot <= questionnaire.SlotDevices; slot++ {
		answer, ok := answers.Get(int(slot))
		if !ok {
			continue
		}
		rule, ok := MatchRule(SlotRules(slot), answer)
		if !ok {
			continue
		}
		for cat, d := range rule.Deltas {
			scores[cat] += d
		}
	}

	for c, v := range scores {
		scores[c] = Clamp(v)
	}
	return scores
}
