package questionnaire

import "testing"

func TestDefaultQuestionSet_Shape(t *testing.T) {
	qs := DefaultQuestionSet()
	if len(qs) != MaxQuestions {
		t.Fatalf("got %d questions, want %d", len(qs), MaxQuestions)
	}
	for i, q := range qs {
		if !q.WellFormed() {
			t.Errorf("default question %d is not well-formed: %+v", i, q)
		}
	}
}

func TestDefaultQuestionSet_FreshCopy(t *testing.T) {
	a := DefaultQuestionSet()
	a[0].Options[0] = "mutated"
	b := DefaultQuestionSet()
	if b[0].Options[0] == "mutated" {
		t.Fatal("DefaultQuestionSet should return an independent copy")
	}
}

func TestQuestion_WellFormed(t *testing.T) {
	tests := []struct {
		name string
		q    Question
		want bool
	}{
		{"ok", Question{Text: "Q?", Options: []string{"a", "b"}}, true},
		{"one option", Question{Text: "Q?", Options: []string{"a"}}, false},
		{"no text", Question{Options: []string{"a", "b"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.WellFormed(); got != tt.want {
				t.Errorf("WellFormed() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnswerSet_RecordOverwritesAndSorts(t *testing.T) {
	a := AnswerSet{}
	a.Record(2, "x")
	a.Record(0, "y")
	a.Record(2, "z")

	if v, _ := a.Get(2); v != "z" {
		t.Errorf("answer 2 = %q, want z", v)
	}
	idx := a.Indices()
	if len(idx) != 2 || idx[0] != 0 || idx[1] != 2 {
		t.Errorf("Indices() = %v, want [0 2]", idx)
	}

	c := a.Clone()
	c.Record(0, "changed")
	if v, _ := a.Get(0); v != "y" {
		t.Error("Clone should not share storage")
	}
}
