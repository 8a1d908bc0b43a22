package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/llm"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/parser"
	"github.com/abhisek/sleepcheck/internal/questionnaire"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Print the question set",
	Long:  "Prints the default questions, or with --generate asks the configured model for a fresh set.",
	RunE:  runQuestions,
}

func init() {
	questionsCmd.Flags().Bool("generate", false, "Ask the model for a question set")
	questionsCmd.Flags().Bool("raw", false, "With --generate, also print the model's raw reply")
}

func runQuestions(cmd *cobra.Command, args []string) error {
	generate, _ := cmd.Flags().GetBool("generate")
	raw, _ := cmd.Flags().GetBool("raw")
	out := cmd.OutOrStdout()

	if !generate {
		printQuestions(cmd, questionnaire.DefaultQuestionSet(), "default")
		return nil
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	o, model := buildOracle(cmd, st)
	cfg := assessment.DefaultConfig()

	ctx, cancel := context.WithTimeout(llm.WithPurpose(cmd.Context(), oracle.PurposeQuestions), cfg.OracleTimeout)
	defer cancel()

	fmt.Fprintf(out, "Generating questions with %s...\n\n", model)
	text, err := o.Generate(ctx, parser.BuildQuestionPrompt())
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "warning:", err)
		printQuestions(cmd, questionnaire.DefaultQuestionSet(), "default (generation failed)")
		return nil
	}

	if raw {
		fmt.Fprintln(out, "── Raw reply ──")
		fmt.Fprintln(out, text)
		fmt.Fprintln(out)
	}

	qs, ok := parser.ParseQuestionResponse(text)
	source := "generated"
	if !ok {
		source = "default (reply unusable)"
	}
	printQuestions(cmd, qs, source)
	return nil
}

func printQuestions(cmd *cobra.Command, qs questionnaire.QuestionSet, source string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Question set: %s\n", source)
	for i, q := range qs {
		fmt.Fprintf(out, "\n%d. %s\n", i+1, q.Text)
		for j, opt := range q.Options {
			fmt.Fprintf(out, "   %c) %s\n", 'a'+j, opt)
		}
	}
}
