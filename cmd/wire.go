package cmd

import (
	"fmt"

	reportadapter "github.com/bnema/gimme-omni/internal/adapters/render/report"
	chainstore "github.com/bnema/gimme-omni/internal/adapters/secrets/chain"
	filestore "github.com/bnema/gimme-omni/internal/adapters/secrets/file"
	passstore "github.com/bnema/gimme-omni/internal/adapters/secrets/pass"
	snapshottoml "github.com/bnema/gimme-omni/internal/adapters/snapshot/toml"
	"github.com/bnema/gimme-omni/internal/adapters/tsops"
	"github.com/bnema/gimme-omni/internal/application"
	"github.com/bnema/gimme-omni/internal/config"
	"github.com/bnema/gimme-omni/internal/domain"
	"github.com/bnema/gimme-omni/internal/logger"
	"github.com/bnema/gimme-omni/internal/ports"
	"github.com/rs/zerolog"
)

type app struct {
	cfg            config.Config
	log            zerolog.Logger
	reports        *application.ReportService
	credentials    *application.CredentialService
	reportRenderer func(domain.Report, reportadapter.RenderOptions) (string, error)
	jsonRenderer   func(domain.Report) (string, error)
	openSnapshot   func(path string) (ports.SnapshotRepository, error)
}

type wireOptions struct {
	configPath string
	logLevel   string
}

func wireApp(opts wireOptions) (*app, error) {
	cfg, err := config.Load(opts.configPath, config.WithLogLevel(opts.logLevel))
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
	if cfg.File != "" {
		log.Debug().Str("file", cfg.File).Msg("loaded config")
	}

	secretStore, err := newSecretStore(cfg.Secrets)
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}
	credentials := application.NewCredentialService(secretStore, cfg.Auth.SecretRef)

	httpClient, err := tsops.NewHTTPClient(tsops.TLSOptions{
		CAFile:             cfg.API.CAFile,
		InsecureSkipVerify: cfg.API.InsecureSkipVerify,
	})
	if err != nil {
		return nil, fmt.Errorf("wire http client: %w", err)
	}
	if cfg.API.InsecureSkipVerify {
		log.Warn().Msg("TLS certificate verification is disabled")
	}

	client := &tsops.Client{
		BaseURL:        cfg.API.BaseURL,
		HTTPClient:     httpClient,
		Token:          credentials.Token,
		RequestTimeout: cfg.API.Timeout,
		Log:            log,
	}

	return &app{
		cfg:            cfg,
		log:            log,
		reports:        application.NewReportService(client, ports.SystemClock{}, log),
		credentials:    credentials,
		reportRenderer: reportadapter.Render,
		jsonRenderer:   reportadapter.RenderJSON,
		openSnapshot: func(path string) (ports.SnapshotRepository, error) {
			return snapshottoml.NewRepository(path)
		},
	}, nil
}

func newSecretStore(cfg config.SecretsConfig) (ports.SecretStore, error) {
	switch cfg.Backend {
	case "file":
		return filestore.NewStore(cfg.Dir), nil
	case "pass":
		return passstore.NewStore(), nil
	default:
		return chainstore.NewPassFirstWithFileFallback(cfg.Dir)
	}
}
