package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mind-engage/writescore/internal/app"
	"github.com/mind-engage/writescore/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "writescore",
		Short:        "Score English writing practice",
		Long:         "writescore rates short essays and emails on a 0-10 scale and tracks progress between attempts.",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("subject", "cli", "Learner whose history is read and written")
	root.PersistentFlags().Bool("json", false, "Print machine-readable JSON")
	root.PersistentFlags().Bool("offline", false, "Skip the grammar service and use the dictionary only (overrides LT_DISABLED)")

	root.AddCommand(newScoreCmd())
	root.AddCommand(newTopicsCmd())
	root.AddCommand(newHistoryCmd())
	root.AddCommand(newQuizCmd())
	return root
}

// openApp loads configuration from the environment and applies the global
// flags on top.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, err
	}
	if off, _ := cmd.Flags().GetBool("offline"); off {
		cfg.LTDisabled = true
	}
	a, err := app.New(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return a, nil
}

func subject(cmd *cobra.Command) string {
	s, _ := cmd.Flags().GetString("subject")
	return s
}

func wantJSON(cmd *cobra.Command) bool {
	j, _ := cmd.Flags().GetBool("json")
	return j
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
