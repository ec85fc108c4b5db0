// Command sep2-register onboards devices to a 2030.5 utility server.
//
// Devices are described in a YAML file and registered in order. Each
// device runs through the full sequence: EndDevice creation, device
// information, DER creation, nameplate ratings, connection point. The
// first failure aborts the batch.
//
// Usage:
//
//	sep2-register [flags] -devices devices.yaml
//
// Connection settings come from flags or from SEP2_* environment
// variables (flags win). Mutual TLS is the normal mode; -local-token
// switches to X-Token header authentication for local test servers.
// With -dry-run no network I/O happens: every request is rendered to
// stdout and answered with synthetic IDs, so a batch can be inspected
// before it is sent.
//
// Examples:
//
//	# Render the requests a batch would produce
//	sep2-register -dry-run -devices fleet.yaml
//
//	# Register against a utility server with a client certificate
//	sep2-register -server https://utility.example:8443 \
//	  -cert aggregator.crt -key aggregator.key -devices fleet.yaml
//
//	# Local test server with token auth, capturing a protocol log
//	sep2-register -server http://localhost:8000 -local-token \
//	  -lfdi 0x21352135135 -protocol-log run.cbor -devices fleet.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	envldr "github.com/SENERGY-Platform/go-env-loader"
	slogger "github.com/SENERGY-Platform/go-service-base/struct-logger"

	"github.com/sep2-protocol/sep2-go/pkg/identity"
	"github.com/sep2-protocol/sep2-go/pkg/log"
	"github.com/sep2-protocol/sep2-go/pkg/model"
	"github.com/sep2-protocol/sep2-go/pkg/registration"
	"github.com/sep2-protocol/sep2-go/pkg/transport"
)

// config holds the connection settings. Environment variables fill it
// first; flags override.
type config struct {
	ServerURL  string `env_var:"SEP2_SERVER_URL"`
	CertFile   string `env_var:"SEP2_CERT_FILE"`
	KeyFile    string `env_var:"SEP2_KEY_FILE"`
	CAFile     string `env_var:"SEP2_CA_FILE"`
	LFDI       string `env_var:"SEP2_LFDI"`
	LocalToken bool   `env_var:"SEP2_LOCAL_TOKEN"`
	TimeoutSec int    `env_var:"SEP2_TIMEOUT_SECONDS"`
	LogLevel   string `env_var:"SEP2_LOG_LEVEL"`
	LogHandler string `env_var:"SEP2_LOG_HANDLER"`
}

func main() {
	cfg := config{
		TimeoutSec: 30,
		LogLevel:   "info",
		LogHandler: "text",
	}
	if err := envldr.LoadEnvUserParser(&cfg, nil, nil, nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading environment: %v\n", err)
		os.Exit(1)
	}

	devicesPath := flag.String("devices", "", "Path to the YAML device file (required)")
	flag.StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Utility server base URL")
	flag.StringVar(&cfg.CertFile, "cert", cfg.CertFile, "Client certificate PEM file")
	flag.StringVar(&cfg.KeyFile, "key", cfg.KeyFile, "Client key PEM file")
	flag.StringVar(&cfg.CAFile, "ca", cfg.CAFile, "CA bundle for server verification (default: system roots)")
	flag.StringVar(&cfg.LFDI, "lfdi", cfg.LFDI, "Aggregator LFDI (hex), used for -local-token and -register-self")
	flag.BoolVar(&cfg.LocalToken, "local-token", cfg.LocalToken, "Authenticate with X-Token headers instead of a client certificate")
	flag.IntVar(&cfg.TimeoutSec, "timeout", cfg.TimeoutSec, "Per-request timeout in seconds")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
	flag.StringVar(&cfg.LogHandler, "log-handler", cfg.LogHandler, "Log handler (text, json)")
	dryRun := flag.Bool("dry-run", false, "Render requests to stdout instead of sending them")
	protocolLog := flag.String("protocol-log", "", "Write protocol events to a CBOR log file")
	registerSelf := flag.Bool("register-self", false, "Register the aggregator's own EndDevice (-lfdi) first")
	flag.Parse()

	logger := newLogger(cfg)

	if *devicesPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -devices is required")
		flag.Usage()
		os.Exit(1)
	}

	devices, err := loadDevices(*devicesPath)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("loaded device file", "path", *devicesPath, "devices", len(devices))

	protoLogger, closeLog, err := newProtocolLogger(logger, *protocolLog)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
	defer closeLog()

	tr, err := newTransport(cfg, *dryRun)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	registrar, err := registration.NewRegistrar(&registration.Config{
		Transport: tr,
		Logger:    protoLogger,
	})
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *registerSelf {
		id, err := runRegisterSelf(ctx, registrar, cfg.LFDI)
		if err != nil {
			logger.Error("aggregator registration failed", "error", err)
			os.Exit(1)
		}
		logger.Info("registered aggregator EndDevice", "id", id)
	}

	results, err := registrar.RegisterAll(ctx, devices)
	for _, result := range results {
		logger.Info("registered device",
			"run_id", result.RunID,
			"end_device_id", result.EndDeviceID,
			"der_id", result.DERID,
		)
	}
	if err != nil {
		logger.Error("registration aborted", "completed", len(results), "error", err)
		os.Exit(1)
	}
	logger.Info("batch complete", "devices", len(results))
}

// newLogger builds the application logger from the configured handler
// and level.
func newLogger(cfg config) *slog.Logger {
	options := &slog.HandlerOptions{
		Level: slogger.GetLevel(cfg.LogLevel, slog.LevelInfo),
	}
	handler := slogger.GetHandler(cfg.LogHandler, os.Stderr, options, slog.Default().Handler())
	return slog.New(handler)
}

// newProtocolLogger wires protocol events to the application logger
// and, when a path is given, to a CBOR event file.
func newProtocolLogger(logger *slog.Logger, path string) (log.Logger, func(), error) {
	adapter := log.NewSlogAdapter(logger)
	if path == "" {
		return adapter, func() {}, nil
	}
	fileLogger, err := log.NewFileLogger(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open protocol log: %w", err)
	}
	closeLog := func() {
		if err := fileLogger.Close(); err != nil {
			logger.Warn("failed to close protocol log", "error", err)
		}
	}
	return log.NewMultiLogger(adapter, fileLogger), closeLog, nil
}

// newTransport selects the transport for the run.
func newTransport(cfg config, dryRun bool) (transport.Transport, error) {
	if dryRun {
		return transport.NewRecordingTransport(os.Stdout), nil
	}
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("-server (or SEP2_SERVER_URL) is required outside -dry-run")
	}

	httpCfg := &transport.HTTPConfig{
		BaseURL: cfg.ServerURL,
		Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
	}

	if cfg.LocalToken {
		lfdi, err := identity.ParseLFDI(cfg.LFDI)
		if err != nil {
			return nil, fmt.Errorf("-local-token needs a valid -lfdi: %w", err)
		}
		httpCfg.Auth = transport.XTokenAuth{LFDI: lfdi}
		return transport.NewHTTPTransport(httpCfg)
	}

	if cfg.CertFile == "" || cfg.KeyFile == "" {
		return nil, fmt.Errorf("-cert and -key are required without -local-token")
	}
	tlsCfg := &transport.TLSConfig{
		Credentials: transport.FileCredentials{CertFile: cfg.CertFile, KeyFile: cfg.KeyFile},
	}
	if cfg.CAFile != "" {
		pool, err := transport.LoadCACertPool(cfg.CAFile)
		if err != nil {
			return nil, err
		}
		tlsCfg.RootCAs = pool
	}
	httpCfg.TLS = tlsCfg
	return transport.NewHTTPTransport(httpCfg)
}

// runRegisterSelf registers the aggregator's own EndDevice.
func runRegisterSelf(ctx context.Context, registrar *registration.Registrar, rawLFDI string) (string, error) {
	lfdi, err := identity.ParseLFDI(rawLFDI)
	if err != nil {
		return "", fmt.Errorf("-register-self needs a valid -lfdi: %w", err)
	}
	sfdi, err := identity.DeriveSFDI(lfdi)
	if err != nil {
		return "", err
	}
	return registrar.RegisterSelf(ctx, &model.EndDevice{
		DeviceCategory: model.CategoryVirtualOrMixedDER,
		LFDI:           lfdi,
		SFDI:           sfdi,
		ChangedTime:    time.Now().Unix(),
		Enabled:        true,
	})
}
