package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leadline-labs/leadline-cli/internal/logger"
)

var uploadDomainID string

var uploadCmd = &cobra.Command{
	Use:   "upload [file...]",
	Short: "Upload a conversation transcript to a domain",
	Long: `Upload a conversation transcript to a domain for later processing.

Only one transcript is uploaded per invocation; when several files are
given, the first is used and the rest are ignored.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runUpload,
}

func init() {
	uploadCmd.Flags().StringVarP(&uploadDomainID, "domain", "d", "", "target domain id (required)")
	_ = uploadCmd.MarkFlagRequired("domain")
	rootCmd.AddCommand(uploadCmd)
}

func runUpload(cmd *cobra.Command, args []string) error {
	if conversationService == nil {
		return errors.New("conversation service not configured")
	}

	// First file wins
	path := args[0]
	if len(args) > 1 {
		logger.Warn("ignoring %d extra files, uploading %s", len(args)-1, path)
	}

	message, err := conversationService.Upload(cmd.Context(), uploadDomainID, path)
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	cmd.Println(message)
	cmd.Println("Processing is still required before results appear.")
	return nil
}
