// Package cli provides the command line interface for leadline.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/leadline-labs/leadline-cli/internal/core/ports/driven"
	"github.com/leadline-labs/leadline-cli/internal/core/ports/driving"
	"github.com/leadline-labs/leadline-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services injected before Execute. Commands check for nil so the package
// stays testable without a full wiring.
var (
	domainService       driving.DomainService
	questionService     driving.QuestionService
	conversationService driving.ConversationService
	resultService       driving.ResultService
	configStore         driven.ConfigStore
)

var (
	verbose        bool
	serverOverride string
)

// serverOverrideHook applies the --server flag to the backend client.
// Installed by main during wiring.
var serverOverrideHook func(url string)

// OnServerOverride registers the function invoked when --server is set.
func OnServerOverride(fn func(url string)) {
	serverOverrideHook = fn
}

var rootCmd = &cobra.Command{
	Use:   "leadline",
	Short: "Client for the leadline knowledge extraction backend",
	Long: `leadline manages knowledge domains, their questions, and uploaded
conversation transcripts, and browses the answers the backend extracts
from them.

Run without arguments to launch the interactive terminal UI.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		if serverOverride != "" && serverOverrideHook != nil {
			serverOverrideHook(serverOverride)
		}
	},
	RunE: runTUI,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&serverOverride, "server", "s", "",
		"backend server URL for this invocation (overrides configuration)")
}

// Services bundles everything the CLI needs injected.
type Services struct {
	Domains       driving.DomainService
	Questions     driving.QuestionService
	Conversations driving.ConversationService
	Results       driving.ResultService
	Config        driven.ConfigStore
}

// SetServices injects the core services the commands run against.
func SetServices(s Services) {
	domainService = s.Domains
	questionService = s.Questions
	conversationService = s.Conversations
	resultService = s.Results
	configStore = s.Config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
