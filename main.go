package main

import (
	"context"
	"fmt"
	"os"

	"github.com/relnote-labs/relnotes-cli/internal/adapters/driven/config/file"
	"github.com/relnote-labs/relnotes-cli/internal/adapters/driving/cli"
	"github.com/relnote-labs/relnotes-cli/internal/connectors/github"
	"github.com/relnote-labs/relnotes-cli/internal/core/ports/driving"
	"github.com/relnote-labs/relnotes-cli/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "relnotes: %v\n", err)
		os.Exit(1)
	}

	factory := func(ctx context.Context, token string) driving.Aggregator {
		source := github.NewSource(ctx, token)
		return services.NewAggregatorService(source)
	}

	cli.Setup(factory, configStore, version)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
