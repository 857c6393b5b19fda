package cli

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change client configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current configuration",
	RunE:  runConfigShow,
}

var configSetServerCmd = &cobra.Command{
	Use:   "set-server [url]",
	Short: "Set the backend server URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetServer,
}

var configSetRateCmd = &cobra.Command{
	Use:   "set-rate [requests-per-second]",
	Short: "Set the request pacing for the results fan-out (0 disables)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetRate,
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetServerCmd, configSetRateCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	cmd.Printf("Server URL:          %s\n", settings.ServerURL)
	if settings.RequestsPerSecond > 0 {
		cmd.Printf("Requests per second: %g (burst %d)\n", settings.RequestsPerSecond, settings.Burst)
	} else {
		cmd.Println("Requests per second: unlimited")
	}
	return nil
}

func runConfigSetServer(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	raw := strings.TrimRight(strings.TrimSpace(args[0]), "/")
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid server URL %q, expected e.g. http://localhost:8000", args[0])
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	settings.ServerURL = raw

	if err := configStore.Save(settings); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}

	cmd.Printf("Server URL set to %s\n", raw)
	return nil
}

func runConfigSetRate(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	rate, err := strconv.ParseFloat(args[0], 64)
	if err != nil || rate < 0 {
		return fmt.Errorf("invalid rate %q, expected a non-negative number", args[0])
	}

	settings, err := configStore.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	settings.RequestsPerSecond = rate
	if settings.Burst < 1 {
		settings.Burst = 1
	}

	if err := configStore.Save(settings); err != nil {
		return fmt.Errorf("save configuration: %w", err)
	}

	if rate > 0 {
		cmd.Printf("Request rate set to %g/s\n", rate)
	} else {
		cmd.Println("Request pacing disabled")
	}
	return nil
}
