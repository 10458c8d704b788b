package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/MGTheTrain/crypto-lab/internal/app"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/crypto-lab/internal/infrastructure/persistence"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/config"
	"github.com/MGTheTrain/crypto-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// ConfigFlag is the persistent root flag naming the YAML configuration file
const ConfigFlag = "config"

// Dependencies bundles everything a single command run needs
type Dependencies struct {
	Config      *config.CLIConfig
	Logger      logger.Logger
	Recorder    *app.MeasurementRecorder
	AESService  *app.AESFileService
	RSAService  *app.RSAService
	HashService *app.HashService

	SubstitutionService *app.SubstitutionService

	db *gorm.DB
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

func configPath(cmd *cobra.Command) string {
	flag := cmd.Flag(ConfigFlag)
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}

// setupDependencies loads the configuration, opens the history store when enabled
// and wires the application services.
func setupDependencies(cmd *cobra.Command) (*Dependencies, error) {
	cfg, err := config.InitializeCLIConfig(configPath(cmd))
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, err
	}

	deps := &Dependencies{
		Config: cfg,
		Logger: loggerInstance,
	}

	var repo *persistence.GormMeasurementRepository
	if cfg.Database.Enabled {
		db, err := persistence.NewDBConnection(cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open measurement history: %w", err)
		}
		deps.db = db

		repo, err = persistence.NewGormMeasurementRepository(db, loggerInstance)
		if err != nil {
			_ = deps.Close()
			return nil, fmt.Errorf("failed to create measurement repository: %w", err)
		}
	}

	if repo != nil {
		deps.Recorder = app.NewMeasurementRecorder(repo, loggerInstance)
	} else {
		deps.Recorder = app.NewMeasurementRecorder(nil, loggerInstance)
	}

	aesProcessor, err := cryptography.NewAESProcessor(loggerInstance)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("failed to create AES processor: %w", err)
	}
	deps.AESService, err = app.NewAESFileService(aesProcessor, cfg.Keys.AES, deps.Recorder, loggerInstance)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("failed to create AES service: %w", err)
	}

	rsaProcessor, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}
	deps.RSAService, err = app.NewRSAService(rsaProcessor, cfg.Keys.RSA, deps.Recorder, loggerInstance)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("failed to create RSA service: %w", err)
	}

	deps.HashService, err = app.NewHashService(cryptography.NewSHA256Hasher(), deps.Recorder, loggerInstance)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("failed to create hash service: %w", err)
	}

	deps.SubstitutionService, err = app.NewSubstitutionService(cryptography.NewFrequencyAnalyzer(), cryptography.DefaultWordPatternLimit, deps.Recorder, loggerInstance)
	if err != nil {
		_ = deps.Close()
		return nil, fmt.Errorf("failed to create substitution service: %w", err)
	}

	return deps, nil
}

// Close releases the history store and the log file when the logger owns one
func (d *Dependencies) Close() error {
	if d == nil {
		return nil
	}

	var errs []error
	if d.db != nil {
		errs = append(errs, persistence.CloseDB(d.db))
		d.db = nil
	}
	if closer, ok := d.Logger.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	return errors.Join(errs...)
}

// commandHandler prepares dependencies before a command group runs. Every RunE
// goes through run so they are released on the error path too.
type commandHandler struct {
	deps *Dependencies
}

func (h *commandHandler) run(fn func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		defer func() {
			if releaseErr := h.release(); releaseErr != nil {
				err = errors.Join(err, releaseErr)
			}
		}()
		return fn(cmd, args)
	}
}

func (h *commandHandler) prepare(cmd *cobra.Command, _ []string) error {
	deps, err := setupDependencies(cmd)
	if err != nil {
		return err
	}
	h.deps = deps
	return nil
}

func (h *commandHandler) release() error {
	err := h.deps.Close()
	h.deps = nil
	return err
}

func requiredFlag(cmd *cobra.Command, name string) (string, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		return "", fmt.Errorf("--%s is required", name)
	}
	return value, nil
}
