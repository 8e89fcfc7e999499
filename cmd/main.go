package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SpaBoard/internal/config"
	"github.com/m04kA/SMC-SpaBoard/internal/domain"
	exportBoardUC "github.com/m04kA/SMC-SpaBoard/internal/usecase/export_board"
	"github.com/m04kA/SMC-SpaBoard/pkg/logger"
)

// cliActor пользователь, от имени которого работают команды CLI
var cliActor = &domain.User{Username: "cli", FullName: "Command line", Role: domain.RoleAdmin}

func main() {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "spa-board",
		Short:         "Spa treatment bed scheduling board",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.toml", "path to config.toml")

	rootCmd.AddCommand(serveCmd(&configPath))
	rootCmd.AddCommand(exportCmd(&configPath))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(*configPath)
		},
	}
}

func exportCmd(configPath *string) *cobra.Command {
	var (
		branchID int64
		output   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export today's board to an .xlsx workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			var branch *int64
			if cmd.Flags().Changed("branch") {
				branch = &branchID
			}
			return runExport(cmd.Context(), *configPath, branch, output)
		},
	}
	cmd.Flags().Int64Var(&branchID, "branch", 0, "export only this branch")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default spa-board-YYYY-MM-DD.xlsx)")
	return cmd
}

func setup(configPath string) (*config.Config, *logger.Logger, error) {
	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("init logger: %w", err)
	}
	log.Info("Configuration loaded from %s", configPath)
	return cfg, log, nil
}

func runServer(configPath string) error {
	cfg, log, err := setup(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	log.Info("Starting SMC-SpaBoard...")

	app, err := buildApp(context.Background(), cfg, log)
	if err != nil {
		log.Error("Failed to initialize application: %v", err)
		return err
	}
	defer app.Close()

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      app.handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		if err != nil {
			log.Error("Server failed to start: %v", err)
			return err
		}
	case <-quit:
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
		return err
	}

	log.Info("Server stopped gracefully")
	return nil
}

func runExport(ctx context.Context, configPath string, branchID *int64, output string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := setup(configPath)
	if err != nil {
		return err
	}
	defer log.Close()

	app, err := buildApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	result, err := app.exportBoard.Execute(ctx, &exportBoardUC.Request{Actor: cliActor, BranchID: branchID})
	if err != nil {
		return fmt.Errorf("export board: %w", err)
	}

	if output == "" {
		output = result.FileName
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(output, result.Content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	log.Info("Exported %d beds to %s", result.BedCount, output)
	return nil
}
