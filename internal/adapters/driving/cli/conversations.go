package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var conversationsCmd = &cobra.Command{
	Use:   "conversations",
	Short: "Browse uploaded conversations",
}

var conversationsListCmd = &cobra.Command{
	Use:   "list [domain-id]",
	Short: "List the conversations uploaded to a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runConversationsList,
}

func init() {
	conversationsCmd.AddCommand(conversationsListCmd)
	rootCmd.AddCommand(conversationsCmd)
}

func runConversationsList(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	conversations, err := conversationService.List(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("list conversations: %w", err)
	}

	if len(conversations) == 0 {
		cmd.Println("No conversations uploaded to this domain.")
		return nil
	}

	for i := range conversations {
		c := &conversations[i]
		cmd.Printf("  %-6s %-30s %s\n", c.ID, c.Filename, c.StatusLabel())
	}
	return nil
}
