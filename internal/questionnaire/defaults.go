package questionnaire

// DefaultQuestionSet returns the fixed question set used whenever a
// generated set is unavailable or unusable. A fresh copy is returned on
// every call.
func DefaultQuestionSet() QuestionSet {
	return QuestionSet{
		{
			Text: "How many hours did you sleep last night?",
			Options: []string{
				"Less than 5 hours (insufficient sleep)",
				"5-6 hours (somewhat below recommended)",
				"7-8 hours (optimal sleep duration)",
				"More than 8 hours (extended sleep)",
			},
		},
		{
			Text: "How long did it take you to fall asleep last night?",
			Options: []string{
				"Less than 5 minutes (fell asleep immediately)",
				"5-15 minutes (normal sleep onset)",
				"15-30 minutes (slightly delayed)",
				"30-60 minutes (significantly delayed)",
				"More than 60 minutes (severe difficulty falling asleep)",
			},
		},
		{
			Text: "Did you wake up during the night?",
			Options: []string{
				"Not at all (slept straight through)",
				"Once briefly (minimal disruption)",
				"2-3 times (moderate disruption)",
				"More than 3 times (fragmented sleep)",
				"Awake for extended periods (severely disrupted)",
			},
		},
		{
			Text: "How did you feel when you woke up this morning?",
			Options: []string{
				"Very refreshed and energetic (optimal recovery)",
				"Mostly rested (good recovery)",
				"Somewhat tired (incomplete recovery)",
				"Very tired (poor recovery)",
				"Exhausted (minimal recovery)",
			},
		},
		{
			Text: "Did you use electronic devices within an hour before sleeping?",
			Options: []string{
				"No devices at all (complete digital detox)",
				"Brief check only (minimal exposure)",
				"15-30 minutes (moderate exposure)",
				"30-60 minutes (significant exposure)",
				"Used until falling asleep (maximum exposure)",
			},
		},
	}
}
