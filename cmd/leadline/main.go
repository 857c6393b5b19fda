package main

import (
	"fmt"
	"os"

	"github.com/leadline-labs/leadline-cli/internal/adapters/driven/api"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driven/config/file"
	"github.com/leadline-labs/leadline-cli/internal/adapters/driving/cli"
	"github.com/leadline-labs/leadline-cli/internal/core/domain"
	"github.com/leadline-labs/leadline-cli/internal/core/services"
	"github.com/leadline-labs/leadline-cli/internal/logger"
)

func main() {
	store, err := file.NewStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	settings, err := store.Load()
	if err != nil {
		logger.Error("loading configuration: %v, falling back to defaults", err)
		settings = domain.DefaultSettings()
	}

	backend := api.NewClient(api.Config{
		BaseURL:           settings.ServerURL,
		RequestsPerSecond: settings.RequestsPerSecond,
		Burst:             settings.Burst,
	})

	cli.OnServerOverride(backend.SetBaseURL)

	cli.SetServices(cli.Services{
		Domains:       services.NewDomainService(backend),
		Questions:     services.NewQuestionService(backend),
		Conversations: services.NewConversationService(backend),
		Results:       services.NewResultService(backend),
		Config:        store,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
