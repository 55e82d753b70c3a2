package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/adhd-selfcheck/backend/internal/client"
)

const defaultServer = "http://localhost:8080"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "screener",
		Short:         "Adult ADHD self-screening from the terminal",
		Long:          "screener scores the 18-question adult ADHD self-check offline or talks to a running self-check server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("server", "", "Server base URL (overrides SCREENER_SERVER, default "+defaultServer+")")
	root.PersistentFlags().Duration("timeout", 10*time.Second, "HTTP timeout")

	root.AddCommand(
		newQuestionsCmd(),
		newScoreCmd(),
		newSubmitCmd(),
		newGetCmd(),
		newListCmd(),
		newReportCmd(),
		newExportCmd(),
		newSimulateCmd(),
	)
	return root
}

// resolveServer returns the --server flag, then SCREENER_SERVER, then the default.
func resolveServer(cmd *cobra.Command) string {
	if s, _ := cmd.Flags().GetString("server"); s != "" {
		return s
	}
	if s := os.Getenv("SCREENER_SERVER"); s != "" {
		return s
	}
	return defaultServer
}

func newClient(cmd *cobra.Command) *client.Client {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return client.New(resolveServer(cmd), timeout)
}
