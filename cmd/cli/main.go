package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/redbank/bankmcp/internal/infrastructure/config"
	"github.com/redbank/bankmcp/internal/infrastructure/logger"
	"github.com/redbank/bankmcp/internal/infrastructure/postgres"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "bankmcp-cli",
		Short: "Red Bank MCP server CLI tool",
		Long:  `A command line interface for operating the Red Bank MCP server.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8000", "Base URL of the MCP server")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(healthCmd())
	rootCmd.AddCommand(migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func healthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server liveness and readiness",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := &http.Client{Timeout: timeout}

			for _, endpoint := range []string{"/health", "/ready"} {
				status, body, err := fetch(client, baseURL+endpoint)
				if err != nil {
					return fmt.Errorf("request to %s failed: %w", endpoint, err)
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d %s\n", endpoint, status, body)

				if status != http.StatusOK {
					return fmt.Errorf("%s returned status %d", endpoint, status)
				}
			}

			return nil
		},
	}
}

func migrateCmd() *cobra.Command {
	var migrationsPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration operations",
	}

	cmd.PersistentFlags().StringVar(&migrationsPath, "path", "internal/infrastructure/postgres/migrations", "Path to migration files")

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console"})

			return postgres.RunMigrations(cfg.DSN(), migrationsPath, log)
		},
	}

	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back the last migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: "console"})

			return postgres.RunMigrationsDown(cfg.DSN(), migrationsPath, log)
		},
	}

	cmd.AddCommand(upCmd)
	cmd.AddCommand(downCmd)

	return cmd
}

func fetch(client *http.Client, url string) (int, string, error) {
	resp, err := client.Get(url)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, "", err
	}

	return resp.StatusCode, string(body), nil
}
