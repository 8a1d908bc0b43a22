package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/sleepcheck/internal/app"
	"github.com/abhisek/sleepcheck/internal/assessment"
	"github.com/abhisek/sleepcheck/internal/llm"
	"github.com/abhisek/sleepcheck/internal/oracle"
	"github.com/abhisek/sleepcheck/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds the oracle, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	o, status := buildOracle(cmd, st)
	session := assessment.NewSession(o, assessment.DefaultConfig())
	return app.Run(app.Options{Session: session, Status: status})
}

// buildOracle returns the LLM-backed oracle and its model name, or the
// offline oracle when --offline is set or no provider is configured. A nil
// store disables call logging.
func buildOracle(cmd *cobra.Command, st *store.Store) (oracle.Oracle, string) {
	if offline, _ := cmd.Flags().GetBool("offline"); offline {
		return oracle.Offline{}, "offline"
	}

	var log llm.CallLog
	if st != nil {
		log = st.EventRepo()
	}
	provider, err := llm.NewProviderFromEnv(cmd.Context(), log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "warning: using default questions and local scoring.")
		return oracle.Offline{}, "offline"
	}
	o := oracle.NewLLM(provider, oracle.DefaultConfig())
	return o, o.ModelID()
}
