package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var createQuestions []string

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Manage knowledge domains",
}

var domainsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all domains",
	RunE:  runDomainsList,
}

var domainsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a domain, optionally seeded with questions",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainsCreate,
}

var domainsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a domain and everything under it",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainsDelete,
}

var domainsLeadsCmd = &cobra.Command{
	Use:   "leads [id]",
	Short: "Ask the backend to suggest leads for a domain",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomainsLeads,
}

func init() {
	domainsCreateCmd.Flags().StringArrayVarP(&createQuestions, "question", "q", nil,
		"initial question (repeatable)")
	domainsCmd.AddCommand(domainsListCmd, domainsCreateCmd, domainsDeleteCmd, domainsLeadsCmd)
	rootCmd.AddCommand(domainsCmd)
}

func runDomainsList(cmd *cobra.Command, _ []string) error {
	if domainService == nil {
		return errors.New("domain service not configured")
	}

	domains, err := domainService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("list domains: %w", err)
	}

	if len(domains) == 0 {
		cmd.Println("No domains.")
		return nil
	}

	for i := range domains {
		d := &domains[i]
		cmd.Printf("  %-6s %-30s %d questions\n", d.ID, d.Name, d.QuestionCount)
	}
	return nil
}

func runDomainsCreate(cmd *cobra.Command, args []string) error {
	if domainService == nil {
		return errors.New("domain service not configured")
	}

	added, err := domainService.Create(cmd.Context(), args[0], createQuestions)
	if err != nil {
		return fmt.Errorf("create domain: %w", err)
	}

	cmd.Printf("Domain %q created, %d questions seeded\n", strings.TrimSpace(args[0]), added)
	return nil
}

func runDomainsDelete(cmd *cobra.Command, args []string) error {
	if domainService == nil {
		return errors.New("domain service not configured")
	}

	if err := domainService.Delete(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("delete domain: %w", err)
	}

	cmd.Println("Domain deleted.")
	return nil
}

func runDomainsLeads(cmd *cobra.Command, args []string) error {
	if domainService == nil {
		return errors.New("domain service not configured")
	}

	leads, err := domainService.GenerateLeads(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("generate leads: %w", err)
	}

	if len(leads) == 0 {
		cmd.Println("No leads suggested.")
		return nil
	}
	for _, lead := range leads {
		cmd.Printf("  #%s\n", lead)
	}
	return nil
}
