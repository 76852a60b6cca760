package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/cli"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/config"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/events"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/export"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/handlers"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/metrics"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/service"
	"github.com/Juanes-GOAT/Maintenance-Management-2.0/internal/store"
)

func main() {
	if err := rootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCommand() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "maintenance",
		Short: "Maintenance management for equipment, work orders, technicians and plans",
		Long: `Tracks industrial equipment, maintenance work orders, technicians and
scheduled maintenance plans, persisting everything after each change.

Run without arguments for the interactive console menu, or use "serve"
to expose the same operations over HTTP.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), configPath)
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "maintenance.yaml", "Path to the YAML config file")

	menu := &cobra.Command{
		Use:   "menu",
		Short: "Interactive console menu (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.Context(), configPath)
		},
	}

	var addr string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the operations over HTTP with Prometheus metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath, addr)
		},
	}
	serve.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	var out string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the maintenance history to CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd.Context(), configPath, out)
		},
	}
	exportCmd.Flags().StringVarP(&out, "out", "o", "maintenance_history.csv", "Output CSV path")

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteDefault(configPath); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", configPath)
			return nil
		},
	}

	root.AddCommand(menu, serve, exportCmd, initCmd)
	return root
}

// setup loads configuration, opens the store and returns a loaded service.
func setup(ctx context.Context, configPath string, extra ...service.Option) (*service.Service, config.Config, func(), error) {
	// .env is optional; env vars win over the YAML file either way
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, config.Config{}, nil, err
	}

	cleanup := func() {}
	var st store.Store
	switch cfg.StorageDriver {
	case "mongo":
		client, err := store.ConnectMongo(ctx)
		if err != nil {
			return nil, config.Config{}, nil, err
		}
		cleanup = func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}
		st = store.NewMongoStore(client.Database(cfg.MongoDatabase).Collection("datasets"))
	default:
		fs, err := store.NewFileStore(cfg.DataFile)
		if err != nil {
			return nil, config.Config{}, nil, err
		}
		st = fs
	}

	opts := append([]service.Option{}, extra...)
	if cfg.MQTTBroker != "" {
		notifier, err := events.NewMQTTNotifier(cfg.MQTTBroker, "maintenance-"+fmt.Sprint(os.Getpid()), cfg.MQTTTopic)
		if err != nil {
			log.WithError(err).Warn("change-event notifier disabled")
		} else {
			opts = append(opts, service.WithNotifier(notifier))
			prev := cleanup
			cleanup = func() { notifier.Close(); prev() }
		}
	}

	svc := service.New(st, opts...)
	if err := svc.Load(ctx); err != nil {
		log.WithError(err).Warn("starting with empty dataset")
	}
	return svc, cfg, cleanup, nil
}

func runMenu(ctx context.Context, configPath string) error {
	svc, _, cleanup, err := setup(ctx, configPath)
	if err != nil {
		return err
	}
	defer cleanup()
	return cli.NewMenu(svc, os.Stdin, os.Stdout).Run(ctx)
}

func runServe(ctx context.Context, configPath, addr string) error {
	recorder := metrics.NewPrometheusRecorder(nil)
	svc, cfg, cleanup, err := setup(ctx, configPath, service.WithMetrics(recorder))
	if err != nil {
		return err
	}
	defer cleanup()

	mux := http.NewServeMux()
	handlers.NewAPI(svc).Register(mux)
	mux.Handle("/metrics", metrics.Handler())

	if addr == "" {
		addr = cfg.HTTPAddr
	}
	log.WithField("addr", addr).Info("HTTP server listening")
	server := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	return server.ListenAndServe()
}

func runExport(ctx context.Context, configPath, out string) error {
	svc, _, cleanup, err := setup(ctx, configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("create %s: %w", out, err)
	}
	defer f.Close()
	if err := export.WriteHistoryCSV(f, svc.History()); err != nil {
		return err
	}
	fmt.Printf("history exported to %s\n", out)
	return nil
}
