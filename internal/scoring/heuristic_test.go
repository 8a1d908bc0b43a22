package scoring

import (
	"reflect"
	"testing"

	"github.com/abhisek/sleepcheck/internal/questionnaire"
)

func answersFromOptions(pick func(opts []string) string) questionnaire.AnswerSet {
	a := questionnaire.AnswerSet{}
	for i, q := range questionnaire.DefaultQuestionSet() {
		a.Record(i, pick(q.Options))
	}
	return a
}

func bestAnswers() questionnaire.AnswerSet {
	return answersFromOptions(func(opts []string) string {
		// Slot 0 lists its best option third.
		for _, o := range opts {
			if o == "7-8 hours (optimal sleep duration)" {
				return o
			}
		}
		return opts[0]
	})
}

func worstAnswers() questionnaire.AnswerSet {
	return answersFromOptions(func(opts []string) string {
		if opts[0] == "Less than 5 hours (insufficient sleep)" {
			return opts[0]
		}
		return opts[len(opts)-1]
	})
}

func TestScore_BestAnswers(t *testing.T) {
	got := Score(bestAnswers())
	want := CategoryScores{
		Quality:     100, // 65+15+20+20 clamped
		Duration:    90,
		Consistency: 75,
		Environment: 85,
		Habits:      95,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Score(best) = %v, want %v", got, want)
	}
	if o := Overall(got); o != 89 {
		t.Errorf("Overall = %d, want 89", o)
	}
}

func TestScore_WorstAnswers(t *testing.T) {
	got := Score(worstAnswers())
	want := CategoryScores{
		Quality:     0, // 65-20-30-25 clamped
		Duration:    40,
		Consistency: 50,
		Environment: 35,
		Habits:      20,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Score(worst) = %v, want %v", got, want)
	}
}

func TestScore_EmptyAnswersIsBaseline(t *testing.T) {
	got := Score(questionnaire.AnswerSet{})
	if !reflect.DeepEqual(got, BaselineScores()) {
		t.Fatalf("Score(empty) = %v, want baseline", got)
	}
}

func TestScore_UnmatchedAnswerLeavesBaseline(t *testing.T) {
	a := questionnaire.AnswerSet{0: "I honestly don't remember"}
	got := Score(a)
	if got[Duration] != Baseline || got[Consistency] != Baseline {
		t.Errorf("unmatched slot 0 changed scores: %v", got)
	}
}

func TestScore_SlotsArePositional(t *testing.T) {
	// "15-30 minutes" is neutral for onset but negative for devices.
	onset := Score(questionnaire.AnswerSet{1: "15-30 minutes (slightly delayed)"})
	if !reflect.DeepEqual(onset, BaselineScores()) {
		t.Errorf("onset 15-30 should be neutral, got %v", onset)
	}
	devices := Score(questionnaire.AnswerSet{4: "15-30 minutes (moderate exposure)"})
	if devices[Habits] != 60 || devices[Environment] != 60 {
		t.Errorf("devices 15-30 = %v, want Habits 60 Environment 60", devices)
	}
}

func TestScore_FullCoverageAndRange(t *testing.T) {
	qs := questionnaire.DefaultQuestionSet()
	// Walk every option of every slot combined with a fixed choice for the rest.
	for slot, q := range qs {
		for _, opt := range q.Options {
			a := bestAnswers()
			a.Record(slot, opt)
			got := Score(a)
			if len(got) != 5 || !got.Complete() {
				t.Fatalf("slot %d option %q: incomplete scores %v", slot, opt, got)
			}
			for c, v := range got {
				if v < 0 || v > 100 {
					t.Errorf("slot %d option %q: %s = %d out of range", slot, opt, c, v)
				}
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	a := worstAnswers()
	first := Score(a)
	for range 20 {
		if got := Score(a); !reflect.DeepEqual(got, first) {
			t.Fatalf("Score not deterministic: %v vs %v", got, first)
		}
	}
}

func TestMatchRule_FirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Pattern: "tired", Deltas: map[Category]int{Quality: -1}},
		{Pattern: "Very tired", Deltas: map[Category]int{Quality: -15}},
	}
	r, ok := MatchRule(rules, "Very tired (poor recovery)")
	if !ok || r.Pattern != "tired" {
		t.Fatalf("expected first rule to win, got %+v", r)
	}
}

func TestSlotRules_Coverage(t *testing.T) {
	for slot := questionnaire.SlotDuration; slot <= questionnaire.SlotDevices; slot++ {
		rules := SlotRules(slot)
		if len(rules) < 4 {
			t.Errorf("slot %d has %d rules, want at least 4", slot, len(rules))
		}
		for _, r := range rules {
			for c := range r.Deltas {
				if _, ok := ParseCategory(string(c)); !ok {
					t.Errorf("slot %d rule %q touches unknown category %q", slot, r.Pattern, c)
				}
			}
		}
	}
}

func TestSlotRules_EveryDefaultOptionMatches(t *testing.T) {
	for slot, q := range questionnaire.DefaultQuestionSet() {
		for _, opt := range q.Options {
			if _, ok := MatchRule(SlotRules(questionnaire.Slot(slot)), opt); !ok {
				t.Errorf("slot %d option %q matches no rule", slot, opt)
			}
		}
	}
}
