package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/interviewfun/authtui/internal/auth"
	"github.com/interviewfun/authtui/internal/auth/mock"
	"github.com/interviewfun/authtui/internal/log"
)

var (
	playgroundFail    string
	playgroundLatency time.Duration
)

var playgroundCmd = &cobra.Command{
	Use:   "playground",
	Short: "Run against an in-memory auth server",
	Long: `Launch the TUI with a scripted client instead of a real server.
Every call succeeds after --latency unless --fail is set, in which case
every call fails with that message.`,
	RunE: runPlayground,
}

func init() {
	rootCmd.AddCommand(playgroundCmd)

	playgroundCmd.Flags().StringVar(&playgroundFail, "fail", "", "fail every call with this message")
	playgroundCmd.Flags().DurationVar(&playgroundLatency, "latency", 800*time.Millisecond, "delay before each call completes")
}

func playgroundClient(fail string, latency time.Duration) *mock.Client {
	client := mock.New()
	if fail != "" {
		client = mock.FailAll(fail)
	}
	client.Latency = latency
	return client
}

func runPlayground(_ *cobra.Command, _ []string) error {
	debug, cleanup, err := setupLogging()
	if err != nil {
		return err
	}
	defer cleanup()

	var client auth.Client = playgroundClient(playgroundFail, playgroundLatency)
	log.Info(log.CatAuth, "playground client", "fail", playgroundFail, "latency", playgroundLatency)
	return runProgram(client, debug)
}
