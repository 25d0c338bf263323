package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"fyyur/cmd"
	"fyyur/internal/data/repository"
	"fyyur/internal/listing"
	"fyyur/internal/wire"
	"fyyur/pkg/database"
	"fyyur/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	command, err := cmd.ParseCommand(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatalf("Invalid command line: %v", err)
	}

	// Load config
	config, err := utils.LoadConfig(command.EnvFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("command", command.Name),
		zap.Bool("debug", config.App.Debug),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, command, config, logger); err != nil {
		logger.Error("Command failed", zap.String("command", command.Name), zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, command cmd.Command, config *utils.Config, logger *zap.Logger) error {
	if command.Name == cmd.CommandMigrate {
		dir, err := database.ParseDirection(command.Args[0])
		if err != nil {
			return err
		}
		return database.Migrate(config.Database, dir, logger)
	}

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	clock := listing.SystemClock{}

	if command.Name == cmd.CommandSeed {
		return cmd.Seed(ctx, db, cmd.DemoData(clock.Now()), clock, logger)
	}

	repos := repository.NewRepository(db, logger)
	app := wire.Wiring(repos, clock, logger)

	return cmd.APIServer(ctx, app.Router, config.App.Port, config.App.ShutdownTimeout, logger)
}
