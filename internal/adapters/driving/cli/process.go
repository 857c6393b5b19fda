package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var processCmd = &cobra.Command{
	Use:   "process [conversation-id]",
	Short: "Run extraction over an uploaded conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runProcess,
}

var resultsCmd = &cobra.Command{
	Use:   "results [conversation-id]",
	Short: "Show the extraction results of a processed conversation",
	Args:  cobra.ExactArgs(1),
	RunE:  runResults,
}

func init() {
	rootCmd.AddCommand(processCmd, resultsCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	count, err := conversationService.Process(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("process conversation: %w", err)
	}

	cmd.Printf("Conversation processed, %d questions analysed\n", count)
	return nil
}

func runResults(cmd *cobra.Command, args []string) error {
	if resultService == nil {
		return errors.New("result service not configured")
	}

	set, err := resultService.Results(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("load results: %w", err)
	}

	cmd.Printf("%s / %s (%d results)\n\n", set.DomainName, set.Filename, set.Total)
	if len(set.Results) == 0 {
		cmd.Println("No results were extracted from this conversation.")
		return nil
	}

	for i := range set.Results {
		r := &set.Results[i]
		cmd.Printf("  [%3.0f%%] %s\n", r.Confidence*100, r.QuestionText)
		cmd.Printf("         %s\n", r.Answer)
		for _, lead := range r.Leads {
			cmd.Printf("         #%s\n", lead)
		}
		cmd.Println()
	}
	return nil
}
