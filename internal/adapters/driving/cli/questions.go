package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leadline-labs/leadline-cli/internal/core/domain"
)

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Manage the questions of a domain",
}

var questionsListCmd = &cobra.Command{
	Use:   "list [domain-id]",
	Short: "List the questions of a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestionsList,
}

var questionsAddCmd = &cobra.Command{
	Use:   "add [domain-id] [text]",
	Short: "Add a question to a domain",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuestionsAdd,
}

var questionsUpdateCmd = &cobra.Command{
	Use:   "update [question-id] [text]",
	Short: "Replace the text of a question",
	Args:  cobra.ExactArgs(2),
	RunE:  runQuestionsUpdate,
}

var questionsDeleteCmd = &cobra.Command{
	Use:   "delete [question-id]",
	Short: "Delete a question",
	Args:  cobra.ExactArgs(1),
	RunE:  runQuestionsDelete,
}

func init() {
	questionsCmd.AddCommand(questionsListCmd, questionsAddCmd, questionsUpdateCmd, questionsDeleteCmd)
	rootCmd.AddCommand(questionsCmd)
}

func runQuestionsList(cmd *cobra.Command, args []string) error {
	if questionService == nil {
		return errors.New("question service not configured")
	}

	questions, err := questionService.List(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("list questions: %w", err)
	}

	if len(questions) == 0 {
		cmd.Println("No questions in this domain.")
		return nil
	}

	for i := range questions {
		q := &questions[i]
		cmd.Printf("  %-6s %s\n", q.ID, q.Text)
		for _, lead := range q.Leads {
			cmd.Printf("         #%s\n", lead)
		}
	}
	return nil
}

func runQuestionsAdd(cmd *cobra.Command, args []string) error {
	if questionService == nil {
		return errors.New("question service not configured")
	}

	outcome, err := questionService.Add(cmd.Context(), args[0], args[1])
	if err != nil {
		return fmt.Errorf("add question: %w", err)
	}

	switch outcome {
	case domain.OutcomeDuplicate:
		cmd.Println("A similar question already exists, nothing added.")
	case domain.OutcomeRejected:
		cmd.Println("The backend rejected this question.")
	default:
		cmd.Println("Question added.")
	}
	return nil
}

func runQuestionsUpdate(cmd *cobra.Command, args []string) error {
	if questionService == nil {
		return errors.New("question service not configured")
	}

	updated, err := questionService.Update(cmd.Context(), args[0], "", args[1])
	if err != nil {
		return fmt.Errorf("update question: %w", err)
	}

	if !updated {
		cmd.Println("Nothing to update.")
		return nil
	}
	cmd.Println("Question updated.")
	return nil
}

func runQuestionsDelete(cmd *cobra.Command, args []string) error {
	if questionService == nil {
		return errors.New("question service not configured")
	}

	if err := questionService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete question: %w", err)
	}

	cmd.Println("Question deleted.")
	return nil
}
