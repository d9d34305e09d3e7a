package cmd

import (
	"fmt"
	"log"

	"cinema-catalog/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runtime carries what every subcommand needs once the root has bootstrapped.
type runtime struct {
	envFile string
	config  *utils.Config
	logger  *zap.Logger
}

// NewRootCommand builds the catalog CLI.
func NewRootCommand() *cobra.Command {
	rt := &runtime{}

	root := &cobra.Command{
		Use:           "cinema-catalog",
		Short:         "Read-only movie catalog HTTP service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return rt.bootstrap()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if rt.logger != nil {
				_ = rt.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&rt.envFile, "env", ".env", "path to the dotenv config file")

	root.AddCommand(newServeCommand(rt))
	root.AddCommand(newMigrateCommand(rt))

	return root
}

func (rt *runtime) bootstrap() error {
	config, err := utils.LoadConfig(rt.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	rt.config = config

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using zap production logger.", err)
		logger, _ = zap.NewProduction()
	}
	rt.logger = logger

	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		log.Fatalf("cinema-catalog: %v", err)
	}
}
