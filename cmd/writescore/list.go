package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mind-engage/writescore/internal/history"
	"github.com/mind-engage/writescore/internal/quiz"
)

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List writing topics",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			list, err := a.Topics.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list topics: %w", err)
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), list)
			}
			w := cmd.OutOrStdout()
			for _, t := range list {
				fmt.Fprintf(w, "%-24s  %-6s  %s\n", t.ID, t.Format, t.Title)
			}
			return nil
		},
	}
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past scores and progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			entries, err := a.History.Recent(cmd.Context(), subject(cmd), limit)
			if err != nil {
				return fmt.Errorf("query history: %w", err)
			}
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), entries)
			}
			w := cmd.OutOrStdout()
			if len(entries) == 0 {
				fmt.Fprintln(w, "No history yet.")
				return nil
			}
			fmt.Fprintf(w, "%-10s  %-24s  %s\n", "Date", "Topic", "Score")
			fmt.Fprintln(w, strings.Repeat("─", 44))
			for _, e := range entries {
				fmt.Fprintf(w, "%-10s  %-24s  %d/10\n", e.Date, e.TopicID, e.Points)
			}
			fmt.Fprintln(w)
			for _, p := range history.Progress(entries) {
				fmt.Fprintf(w, "#%-3d %s\n", p.Attempt, strings.Repeat("█", p.Points))
			}
			return nil
		},
	}
	cmd.Flags().Int("limit", history.ProgressWindow, "Number of most recent entries")
	return cmd
}

func newQuizCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quiz",
		Short: "Print a short review quiz",
		RunE: func(cmd *cobra.Command, args []string) error {
			n, _ := cmd.Flags().GetInt("n")
			qs := quiz.Draw(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), n)
			if wantJSON(cmd) {
				return printJSON(cmd.OutOrStdout(), qs)
			}
			w := cmd.OutOrStdout()
			for i, q := range qs {
				fmt.Fprintf(w, "%d. %s\n", i+1, q.Question)
				for j, o := range q.Options {
					fmt.Fprintf(w, "   %c) %s\n", 'a'+j, o)
				}
			}
			return nil
		},
	}
	cmd.Flags().Int("n", len(quiz.Bank), "Number of questions")
	return cmd
}
