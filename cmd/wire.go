package cmd

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/bnema/bonita-cli/bonita"
	statusadapter "github.com/bnema/bonita-cli/internal/adapters/render/status"
	tomlrepo "github.com/bnema/bonita-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/bonita-cli/internal/adapters/secrets/chain"
	filestore "github.com/bnema/bonita-cli/internal/adapters/secrets/file"
	passstore "github.com/bnema/bonita-cli/internal/adapters/secrets/pass"
	"github.com/bnema/bonita-cli/internal/application"
	"github.com/bnema/bonita-cli/internal/domain"
	"github.com/bnema/bonita-cli/internal/ports"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

type app struct {
	profiles       *application.ProfileService
	workflow       *application.WorkflowService
	override       application.SettingsOverride
	defaultProfile string
	logLevel       *slog.LevelVar
	renderer       renderer
	now            func() time.Time
}

type renderer struct {
	connection func(application.ConnectionReport) (string, error)
	profiles   func([]domain.Profile, domain.ProfileID) (string, error)
	history    func([]domain.LaunchRecord, statusadapter.RenderOptions) (string, error)
}

func wireApp() (*app, error) {
	cfg := viper.New()
	if err := tomlrepo.LoadConfig(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	profileRepo, err := tomlrepo.NewProfileRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire profile repository: %w", err)
	}

	journal, err := tomlrepo.NewJournalRepository(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire launch journal: %w", err)
	}

	secretStore, err := newSecretStore(cfg.GetString(tomlrepo.SecretsBackendKey), cfg.GetString(tomlrepo.SecretsPathKey))
	if err != nil {
		return nil, fmt.Errorf("wire secret store: %w", err)
	}

	logLevel := &slog.LevelVar{}
	logLevel.Set(slog.LevelWarn)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	client := bonita.New(
		bonita.WithHTTPClient(http.DefaultClient),
		bonita.WithRequestTimeout(cfg.GetDuration(tomlrepo.RequestTimeoutKey)),
		bonita.WithLookupRetry(cfg.GetInt(tomlrepo.LookupAttemptsKey), cfg.GetDuration(tomlrepo.LookupDelayKey)),
		bonita.WithRateLimit(rate.Limit(cfg.GetFloat64(tomlrepo.RateLimitKey)), cfg.GetInt(tomlrepo.RateBurstKey)),
		bonita.WithLogger(logger),
	)

	clock := ports.SystemClock{}
	profiles := application.NewProfileService(profileRepo, secretStore, clock)

	return &app{
		profiles: profiles,
		workflow: application.NewWorkflowService(client, profiles, journal, clock),
		override: application.SettingsOverride{
			BaseURL:  cfg.GetString(tomlrepo.URLKey),
			Username: cfg.GetString(tomlrepo.UserKey),
			Password: cfg.GetString(tomlrepo.PasswordKey),
		},
		defaultProfile: cfg.GetString(tomlrepo.ProfileKey),
		logLevel:       logLevel,
		renderer: renderer{
			connection: statusadapter.RenderConnection,
			profiles:   statusadapter.RenderProfiles,
			history:    statusadapter.RenderHistory,
		},
		now: time.Now,
	}, nil
}

func newSecretStore(backend, fileRoot string) (ports.SecretStore, error) {
	switch backend {
	case "", "auto":
		return chainstore.NewPassFirstWithFileFallback(fileRoot)
	case "pass":
		return passstore.NewStore(), nil
	case "file":
		return filestore.NewStore(fileRoot), nil
	default:
		return nil, fmt.Errorf("unknown secrets backend %q (want auto, pass or file)", backend)
	}
}
