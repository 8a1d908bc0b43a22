package questionnaire

import "slices"

// MaxQuestions is the number of slots in a full question set.
const MaxQuestions = 5

// MinWellFormed is the minimum number of well-formed questions a generated
// set needs before it is trusted over the default set.
const MinWellFormed = 3

// Slot identifies one of the fixed positional questions. The heuristic
// scorer keys off the slot, never the generated wording.
type Slot int

const (
	SlotDuration Slot = iota // hours slept
	SlotOnset                // time to fall asleep
	SlotWaking               // night-waking frequency
	SlotMorning              // how rested on waking
	SlotDevices              // screen use before sleep
)

// Question is a prompt plus its ordered answer options. Options carry
// embedded context, e.g. "5-15 minutes (normal sleep onset)".
type Question struct {
	Text    string
	Options []string
}

// WellFormed reports whether the question has text and at least two options.
func (q Question) WellFormed() bool {
	return q.Text != "" && len(q.Options) >= 2
}

// HasOption reports whether value is exactly one of the question's options.
func (q Question) HasOption(value string) bool {
	return slices.Contains(q.Options, value)
}

// QuestionSet is the ordered list of questions for one assessment.
type QuestionSet []Question

// Clone returns a deep copy of the set.
func (qs QuestionSet) Clone() QuestionSet {
	if qs == nil {
		return nil
	}
	out := make(QuestionSet, len(qs))
	for i, q := range qs {
		out[i] = Question{Text: q.Text, Options: slices.Clone(q.Options)}
	}
	return out
}

// AnswerSet maps a question index to the exact text of the chosen option.
// Entries are only ever added or overwritten.
type AnswerSet map[int]string

// Record stores value as the answer for question index.
func (a AnswerSet) Record(index int, value string) {
	a[index] = value
}

// Get returns the answer for index, if any.
func (a AnswerSet) Get(index int) (string, bool) {
	v, ok := a[index]
	return v, ok
}

// Indices returns the answered question indices in ascending order.
func (a AnswerSet) Indices() []int {
	idx := make([]int, 0, len(a))
	for i := range a {
		idx = append(idx, i)
	}
	slices.Sort(idx)
	return idx
}

// Clone returns a copy of the answer set.
func (a AnswerSet) Clone() AnswerSet {
	out := make(AnswerSet, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
