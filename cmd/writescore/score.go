package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mind-engage/writescore/internal/evaluation"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score --topic <id> [file|-]",
		Short: "Score a text read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topicID, _ := cmd.Flags().GetString("topic")
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			rep, err := a.Evaluation.Evaluate(cmd.Context(), subject(cmd), evaluation.Submission{TopicID: topicID, Text: text})
			if errors.Is(err, evaluation.ErrEmptySubmission) {
				return errors.New("please enter your text first")
			}
			if err != nil {
				return err
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), rep)
			}
			printReport(cmd.OutOrStdout(), rep)
			return nil
		},
	}
	cmd.Flags().String("topic", "", "Topic id (see `writescore topics`)")
	_ = cmd.MarkFlagRequired("topic")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(b), nil
}

func printReport(w io.Writer, rep evaluation.Report) {
	s := rep.Scores
	fmt.Fprintf(w, "Topic: %s\n", rep.TopicTitle)
	fmt.Fprintf(w, "Score: %d/%d\n", s.Total, s.Max)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	fmt.Fprintf(w, "  %-12s %d/%d  %s\n", "Content", s.Content.Points, s.Content.Max, s.Content.Feedback)
	fmt.Fprintf(w, "  %-12s %d/%d  %s\n", "Coherence", s.Coherence.Points, s.Coherence.Max, s.Coherence.Feedback)
	fmt.Fprintf(w, "  %-12s %d/%d  %s\n", "Range", s.Range.Points, s.Range.Max, s.Range.Feedback)
	fmt.Fprintf(w, "  %-12s %d/%d  %s\n", "Correctness", s.Correctness.Points, s.Correctness.Max, s.Correctness.Feedback)
	fmt.Fprintf(w, "  %-12s %d/%d  %s\n", "Length", s.Length.Points, s.Length.Max, s.Length.Feedback)

	if rep.Notice != "" {
		fmt.Fprintf(w, "\n%s\n", rep.Notice)
	}
	if len(rep.Errors) > 0 {
		fmt.Fprintf(w, "\nErrors (%d):\n", len(rep.Errors))
		for _, e := range rep.Errors {
			fmt.Fprintf(w, "  %-20q -> %-15s [%s]\n", e.Text, e.Suggestion, e.Category)
		}
	}
	for _, c := range rep.Email {
		mark := "✓"
		if !c.OK {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %s %s\n", mark, c.Detail)
	}
	fmt.Fprintf(w, "\nStyle: %d sentences, %.1f words per sentence (%s)\n",
		rep.Style.Sentences, rep.Style.AvgSentenceLen, rep.Style.Level)
	for _, sug := range rep.Style.Suggestions {
		fmt.Fprintf(w, "  - %s\n", sug)
	}
	for _, b := range rep.Badges {
		fmt.Fprintf(w, "Badge: %s (%s)\n", b.Type, b.Reason)
	}
}
