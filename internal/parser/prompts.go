package parser

import (
	"fmt"
	"strings"

	"github.com/abhisek/sleepcheck/internal/questionnaire"
)

// Section labels and the question sentinel shared by prompts and parsers.
const (
	QuestionSentinel     = "QUESTION:"
	LabelAnalysis        = "ANALYSIS"
	LabelRecommendations = "RECOMMENDATIONS"
	LabelCategoryScores  = "CATEGORY_SCORES"
)

const questionPrompt = `Generate 5 detailed questions specifically about the user's PREVIOUS NIGHT's sleep (not their general sleep habits). Each question should have 4-5 detailed multiple choice options that give context and help users accurately assess their recent sleep quality.

Ask the questions in this order: how many hours they slept, how long it took to fall asleep, whether they woke up during the night, how they felt on waking this morning, and whether they used electronic devices within an hour before sleeping.

Format your response exactly like this example:

QUESTION: How many hours did you sleep last night?
Less than 5 hours (went to bed very late or woke up too early), 5-6 hours (somewhat insufficient), 7-8 hours (recommended amount), More than 8 hours (extended sleep period)

QUESTION: How long did it take you to fall asleep last night?
Less than 5 minutes (fell asleep almost immediately), 5-15 minutes (dozed off quickly), 15-30 minutes (some difficulty), 30-60 minutes (significant delay), More than 60 minutes (severe difficulty falling asleep)

Just provide the questions and detailed options in exactly this format - no introductions or explanations. Put all options for a question on the single line after it, separated by commas. Make each question specifically about LAST NIGHT's sleep (not general sleep patterns), and make the options detailed with contextual descriptions.`

const analysisInstructions = `Based on these answers about LAST NIGHT's sleep quality, provide:

1. A detailed analysis of the user's sleep (2-3 sentences that personalize the assessment based on their answers)
2. Exactly 3 specific, personalized, and actionable recommendations to improve tonight's sleep
3. A breakdown of sleep quality across these 5 categories, with scores between 0-100:
   - Quality (depth and restfulness)
   - Duration (appropriate length)
   - Consistency (regular patterns)
   - Environment (bedroom conditions)
   - Habits (pre-sleep behaviors)`

const analysisFormat = `Format your response exactly like this:
ANALYSIS: [2-3 sentence personalized analysis]

RECOMMENDATIONS:
[First recommendation under 15 words]
[Second recommendation under 15 words]
[Third recommendation under 15 words]

CATEGORY_SCORES:
Quality: [score]
Duration: [score]
Consistency: [score]
Environment: [score]
Habits: [score]`

// BuildQuestionPrompt returns the fixed instruction asking the oracle for
// five multiple-choice questions about the previous night.
func BuildQuestionPrompt() string {
	return questionPrompt
}

// BuildAnalysisPrompt embeds the answered questions, in index order, into
// the analysis instruction. Unanswered questions are left out.
func BuildAnalysisPrompt(questions questionnaire.QuestionSet, answers questionnaire.AnswerSet) string {
	var b strings.Builder

	b.WriteString(analysisInstructions)
	b.WriteString("\n\n")

	blocks := make([]string, 0, len(answers))
	for _, i := range answers.Indices() {
		if i < 0 || i >= len(questions) {
			continue
		}
		v, _ := answers.Get(i)
		blocks = append(blocks, fmt.Sprintf("Question: %s\nAnswer: %s", questions[i].Text, v))
	}
	b.WriteString(strings.Join(blocks, "\n\n"))

	b.WriteString("\n\n")
	b.WriteString(analysisFormat)
	return b.String()
}
