package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"healthgraph/src/config"
	"healthgraph/src/infra/graphdb"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "datagen",
		Short:        "Seeds or wipes the healthcare graph",
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	}

	root.AddCommand(newSeedCmd())
	root.AddCommand(newWipeCmd())

	return root
}

// connect only needs the Neo4j section of the configuration.
func connect(ctx context.Context) (*graphdb.GraphClient, error) {
	cfg := config.Load()
	if err := cfg.Neo4j.Validate(); err != nil {
		return nil, fmt.Errorf("neo4j configuration: %w", err)
	}

	return graphdb.NewGraphClient(
		ctx,
		cfg.Neo4j.URI,
		cfg.Neo4j.Username,
		cfg.Neo4j.Password,
		cfg.Neo4j.Database,
		cfg.Neo4j.MaxPoolSize,
		cfg.Neo4j.AcquisitionTimeout,
	)
}

func newWipeCmd() *cobra.Command {
	var confirmed bool

	cmd := &cobra.Command{
		Use:   "wipe",
		Short: "Detach-deletes every node of the configured database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirmed {
				return fmt.Errorf("refusing to wipe the graph without --yes")
			}

			client, err := connect(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close(context.Background())

			session := client.WriteSession(cmd.Context())
			defer session.Close(context.Background())

			result, err := session.Run(cmd.Context(), "MATCH (n) DETACH DELETE n", nil)
			if err != nil {
				return fmt.Errorf("failed to wipe graph: %w", err)
			}

			summary, err := result.Consume(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to wipe graph: %w", err)
			}

			slog.Info("Graph wiped",
				"nodes_deleted", summary.Counters().NodesDeleted(),
				"relationships_deleted", summary.Counters().RelationshipsDeleted())
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmed, "yes", false, "confirm deletion of all data")

	return cmd
}
