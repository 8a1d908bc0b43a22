package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/report"
)

// errQuizCancelled is returned by runQuiz when the user quits mid-quiz.
var errQuizCancelled = errors.New("assessment cancelled")

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Answer the sleep questions on the command line",
	Long: "Runs the assessment without the full-screen UI. Enter an option number to answer, " +
		"b to go back, or q to quit.",
	RunE: runAssess,
}

func init() {
	assessCmd.Flags().Bool("json", false, "Print the result as JSON")
}

func runAssess(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	o, _ := buildOracle(cmd, st)
	session := assessment.NewSession(o, assessment.DefaultConfig())

	// Prompts go to stderr when stdout carries JSON.
	prompts := cmd.OutOrStdout()
	if asJSON {
		prompts = cmd.ErrOrStderr()
	}

	err = runQuiz(cmd.Context(), session, cmd.InOrStdin(), prompts)
	if errors.Is(err, errQuizCancelled) {
		fmt.Fprintln(prompts, "Cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	rep, err := report.FromSnapshot(session.Snapshot())
	if err != nil {
		return err
	}
	if asJSON {
		data, err := report.MarshalValid(rep)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}
	fmt.Fprintln(prompts)
	return report.WriteText(cmd.OutOrStdout(), rep)
}

// runQuiz drives session from Idle to Complete with line input from in.
func runQuiz(ctx context.Context, session *assessment.Session, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintln(out, "Preparing questions...")
	if err := session.Start(ctx); err != nil {
		return fmt.Errorf("start assessment: %w", err)
	}

	scanner := bufio.NewScanner(in)
	for {
		snap := session.Snapshot()
		if snap.State == assessment.Complete {
			return nil
		}
		q, ok := snap.Current()
		if !ok {
			return fmt.Errorf("unexpected state %s", snap.State)
		}

		fmt.Fprintf(out, "\n── Question %d/%d ──\n%s\n", snap.Index+1, len(snap.Questions), q.Text)
		for i, opt := range q.Options {
			marker := " "
			if prev, ok := snap.Answers.Get(snap.Index); ok && prev == opt {
				marker = "*"
			}
			fmt.Fprintf(out, " %s%d) %s\n", marker, i+1, opt)
		}
		fmt.Fprint(out, "\nYour answer: ")

		if !scanner.Scan() {
			_ = session.Cancel()
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read answer: %w", err)
			}
			return errQuizCancelled
		}
		input := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch input {
		case "q", "quit":
			_ = session.Cancel()
			return errQuizCancelled
		case "b", "back":
			if err := session.Previous(); err != nil {
				fmt.Fprintln(out, "Already at the first question.")
			}
			continue
		}

		n, err := strconv.Atoi(input)
		if err != nil || n < 1 || n > len(q.Options) {
			fmt.Fprintf(out, "Enter a number from 1 to %d, b to go back, or q to quit.\n", len(q.Options))
			continue
		}

		last := snap.Index == len(snap.Questions)-1
		if last {
			fmt.Fprintln(out, "Analysing your night...")
		}
		if err := session.Answer(ctx, snap.Index, q.Options[n-1]); err != nil {
			return fmt.Errorf("answer: %w", err)
		}
	}
}
