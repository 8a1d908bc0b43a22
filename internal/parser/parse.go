// Package parser builds oracle prompts and turns free-text oracle output
// into typed values. Every function here is pure.
package parser

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/sleepcheck/internal/questionnaire"
	"github.com/abhisek/sleepcheck/internal/scoring"
)

// RecommendationCount is the number of recommendations a result carries.
const RecommendationCount = 3

var (
	listMarker     = regexp.MustCompile(`^(?:[-*•]\s*|\d+[.)]\s+)`)
	leadingInteger = regexp.MustCompile(`^[-+]?\d+`)
)

// ParseQuestionResponse extracts a question set from oracle text. Text
// before the first sentinel is ignored. It returns the default set and
// false when fewer than MinWellFormed well-formed questions are found.
func ParseQuestionResponse(text string) (questionnaire.QuestionSet, bool) {
	start := strings.Index(text, QuestionSentinel)
	if start < 0 {
		return questionnaire.DefaultQuestionSet(), false
	}

	var qs questionnaire.QuestionSet
	for _, seg := range strings.Split(text[start:], QuestionSentinel) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		q := parseQuestionSegment(seg)
		if q.WellFormed() {
			qs = append(qs, q)
		}
	}

	if len(qs) < questionnaire.MinWellFormed {
		return questionnaire.DefaultQuestionSet(), false
	}
	if len(qs) > questionnaire.MaxQuestions {
		qs = qs[:questionnaire.MaxQuestions]
	}
	return qs, true
}

func parseQuestionSegment(seg string) questionnaire.Question {
	lines := strings.Split(seg, "\n")
	q := questionnaire.Question{Text: strings.TrimSpace(lines[0])}

	var rest []string
	for _, l := range lines[1:] {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		rest = append(rest, listMarker.ReplaceAllString(l, ""))
	}
	q.Options = splitOptions(strings.Join(rest, ","))
	return q
}

// splitOptions splits on commas outside parentheses, so contextual notes
// like "(late, restless)" stay with their option.
func splitOptions(s string) []string {
	var (
		out   []string
		depth int
		cur   strings.Builder
	)
	flush := func() {
		if o := strings.TrimSpace(cur.String()); o != "" {
			out = append(out, o)
		}
		cur.Reset()
	}
	for _, r := range s {
		switch {
		case r == '(':
			depth++
		case r == ')' && depth > 0:
			depth--
		case r == ',' && depth == 0:
			flush()
			continue
		}
		cur.WriteRune(r)
	}
	flush()
	return out
}

// Analysis holds whichever sections of an analysis response were usable.
// A zero field means that section was absent or unusable.
type Analysis struct {
	Text            string
	Recommendations []string
	Scores          scoring.CategoryScores
}

// HasText reports whether a non-empty analysis section was found.
func (a Analysis) HasText() bool { return a.Text != "" }

// HasRecommendations reports whether exactly RecommendationCount
// recommendations were recovered.
func (a Analysis) HasRecommendations() bool {
	return len(a.Recommendations) == RecommendationCount
}

// HasScores reports whether all five category scores were recovered.
func (a Analysis) HasScores() bool { return a.Scores != nil && a.Scores.Complete() }

// ParseAnalysisResponse splits oracle text into its labelled sections and
// validates each one independently. Malformed sections are left empty.
func ParseAnalysisResponse(text string) Analysis {
	sections := splitSections(text)

	var a Analysis
	a.Text = strings.Join(nonEmpty(sections[LabelAnalysis]), " ")

	var recs []string
	for _, l := range nonEmpty(sections[LabelRecommendations]) {
		if r := strings.TrimSpace(listMarker.ReplaceAllString(l, "")); r != "" {
			recs = append(recs, r)
		}
	}
	if len(recs) >= RecommendationCount {
		a.Recommendations = recs[:RecommendationCount]
	}

	scores := scoring.CategoryScores{}
	for _, l := range nonEmpty(sections[LabelCategoryScores]) {
		c, v, ok := parseScoreLine(l)
		if ok {
			scores[c] = scoring.Clamp(v)
		}
	}
	if scores.Complete() {
		a.Scores = scores
	}
	return a
}

// splitSections assigns every line to the most recent label seen. Text on
// the label line after the colon belongs to that section.
func splitSections(text string) map[string][]string {
	out := map[string][]string{}
	current := ""
	for _, line := range strings.Split(text, "\n") {
		if label, rest, ok := matchLabel(line); ok {
			current = label
			out[current] = append(out[current], rest)
			continue
		}
		if current != "" {
			out[current] = append(out[current], line)
		}
	}
	return out
}

func matchLabel(line string) (label, rest string, ok bool) {
	l := strings.TrimLeft(strings.TrimSpace(line), "#* ")
	for _, name := range []string{LabelAnalysis, LabelRecommendations, LabelCategoryScores} {
		if len(l) < len(name) || !strings.EqualFold(l[:len(name)], name) {
			continue
		}
		tail := strings.TrimLeft(l[len(name):], "* ")
		if !strings.HasPrefix(tail, ":") {
			continue
		}
		return name, strings.TrimLeft(tail[1:], "* "), true
	}
	return "", "", false
}

func parseScoreLine(line string) (scoring.Category, int, bool) {
	name, value, found := strings.Cut(line, ":")
	if !found {
		return "", 0, false
	}
	name = strings.Trim(listMarker.ReplaceAllString(strings.TrimSpace(name), ""), "* ")
	c, ok := scoring.ParseCategory(name)
	if !ok {
		return "", 0, false
	}
	m := leadingInteger.FindString(strings.Trim(value, " []*"))
	if m == "" {
		return "", 0, false
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return "", 0, false
	}
	return c, v, true
}

func nonEmpty(lines []string) []string {
	var out []string
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
