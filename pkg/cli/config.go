package cli

import (
	"context"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/kiroku/pkg/adapter"
	"github.com/m-mizutani/kiroku/pkg/repository"
	syncuc "github.com/m-mizutani/kiroku/pkg/usecase/sync"
	"github.com/m-mizutani/kiroku/pkg/utils/logging"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// AI backends.
const (
	aiBackendNone      = "none"
	aiBackendSimulated = "simulated"
	aiBackendGemini    = "gemini"
)

// config holds configuration values
type config struct {
	configPath string
	logLevel   string

	// Repository
	dataDir string

	// Sync
	bucket          string
	folder          string
	credentialsFile string

	// Enrichment
	aiBackend      string
	geminiProject  string
	geminiLocation string
}

// fileConfig is the yaml shape of the optional config file. File values fill
// fields the flags and environment left empty.
type fileConfig struct {
	DataDir string `yaml:"data_dir"`
	Sync    struct {
		Bucket          string `yaml:"bucket"`
		Folder          string `yaml:"folder"`
		CredentialsFile string `yaml:"credentials_file"`
	} `yaml:"sync"`
	AI struct {
		Backend        string `yaml:"backend"`
		GeminiProject  string `yaml:"gemini_project"`
		GeminiLocation string `yaml:"gemini_location"`
	} `yaml:"ai"`
}

// globalFlags returns common flags used across commands with destination config
func globalFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to yaml config file",
			Sources:     cli.EnvVars("KIROKU_CONFIG"),
			Destination: &cfg.configPath,
		},
		&cli.StringFlag{
			Name:        "data-dir",
			Aliases:     []string{"d"},
			Usage:       "Directory holding the local notes snapshot",
			Sources:     cli.EnvVars("KIROKU_DATA_DIR"),
			Destination: &cfg.dataDir,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Sources:     cli.EnvVars("KIROKU_LOG_LEVEL"),
			Destination: &cfg.logLevel,
		},
	}
}

// syncFlags returns flags for cloud sync configuration with destination config
func syncFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bucket",
			Aliases:     []string{"b"},
			Usage:       "Cloud Storage bucket for the remote snapshot",
			Sources:     cli.EnvVars("KIROKU_BUCKET"),
			Destination: &cfg.bucket,
		},
		&cli.StringFlag{
			Name:        "folder",
			Usage:       "Remote folder name",
			Sources:     cli.EnvVars("KIROKU_FOLDER"),
			Destination: &cfg.folder,
		},
		&cli.StringFlag{
			Name:        "credentials",
			Usage:       "Path to service account credentials file",
			Sources:     cli.EnvVars("KIROKU_CREDENTIALS"),
			Destination: &cfg.credentialsFile,
		},
	}
}

// aiFlags returns flags for enrichment configuration with destination config
func aiFlags(cfg *config) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "ai",
			Usage:       "Enrichment backend (none, simulated, gemini)",
			Value:       aiBackendSimulated,
			Sources:     cli.EnvVars("KIROKU_AI"),
			Destination: &cfg.aiBackend,
		},
		&cli.StringFlag{
			Name:        "gemini-project",
			Usage:       "Google Cloud project ID for Gemini",
			Sources:     cli.EnvVars("GEMINI_PROJECT_ID"),
			Destination: &cfg.geminiProject,
		},
		&cli.StringFlag{
			Name:        "gemini-location",
			Usage:       "Google Cloud location for Gemini",
			Value:       "us-central1",
			Sources:     cli.EnvVars("GEMINI_LOCATION"),
			Destination: &cfg.geminiLocation,
		},
	}
}

// setup loads the optional config file and installs the logger. Call it at
// the top of every command action.
func (cfg *config) setup(ctx context.Context, c *cli.Command) (context.Context, error) {
	if err := cfg.loadFile(c.IsSet); err != nil {
		return ctx, err
	}

	logger := logging.New(cfg.logLevel, os.Stderr)
	logging.SetDefault(logger)
	return logging.With(ctx, logger), nil
}

func (cfg *config) loadFile(isSet func(string) bool) error {
	if cfg.configPath == "" {
		return nil
	}

	data, err := os.ReadFile(cfg.configPath)
	if err != nil {
		return goerr.Wrap(err, "failed to read config file", goerr.Value("path", cfg.configPath))
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return goerr.Wrap(err, "failed to parse config file", goerr.Value("path", cfg.configPath))
	}

	cfg.applyFile(&fc, isSet)
	return nil
}

// applyFile merges file values into the config. Fields with empty flag
// defaults yield to the file only when still empty; fields with non-empty
// defaults (ai, gemini-location) yield unless the flag was set explicitly.
func (cfg *config) applyFile(fc *fileConfig, isSet func(string) bool) {
	if cfg.dataDir == "" {
		cfg.dataDir = fc.DataDir
	}
	if cfg.bucket == "" {
		cfg.bucket = fc.Sync.Bucket
	}
	if cfg.folder == "" {
		cfg.folder = fc.Sync.Folder
	}
	if cfg.credentialsFile == "" {
		cfg.credentialsFile = fc.Sync.CredentialsFile
	}
	if fc.AI.Backend != "" && !isSet("ai") {
		cfg.aiBackend = fc.AI.Backend
	}
	if cfg.geminiProject == "" {
		cfg.geminiProject = fc.AI.GeminiProject
	}
	if fc.AI.GeminiLocation != "" && !isSet("gemini-location") {
		cfg.geminiLocation = fc.AI.GeminiLocation
	}
}

// newRepository creates a new repository instance
func (cfg *config) newRepository() (repository.Repository, error) {
	dir := cfg.dataDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, goerr.Wrap(err, "failed to resolve home directory")
		}
		dir = filepath.Join(home, ".kiroku")
	}

	repo, err := repository.NewLocal(dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create repository")
	}
	return repo, nil
}

// newAI creates the enrichment backend, or nil when enrichment is disabled
func (cfg *config) newAI(ctx context.Context) (adapter.AI, error) {
	switch cfg.aiBackend {
	case aiBackendNone, "":
		return nil, nil

	case aiBackendSimulated:
		return adapter.NewSimulated(), nil

	case aiBackendGemini:
		if cfg.geminiProject == "" {
			return nil, goerr.New("gemini-project is required")
		}
		if cfg.geminiLocation == "" {
			return nil, goerr.New("gemini-location is required")
		}
		ai, err := adapter.NewGemini(ctx, cfg.geminiProject, cfg.geminiLocation)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create gemini adapter")
		}
		return ai, nil

	default:
		return nil, goerr.New("unknown AI backend", goerr.Value("backend", cfg.aiBackend))
	}
}

// newSync creates the sync usecase and authenticates it against the remote
func (cfg *config) newSync(ctx context.Context, repo repository.Repository) (*syncuc.UseCase, error) {
	if cfg.bucket == "" {
		return nil, goerr.New("bucket is required for sync")
	}

	drive, err := adapter.NewDrive(ctx, cfg.bucket, cfg.credentialsFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create drive adapter")
	}

	var opts []syncuc.Option
	if cfg.folder != "" {
		opts = append(opts, syncuc.WithFolder(cfg.folder))
	}

	uc := syncuc.New(repo, drive, opts...)
	if err := uc.Authenticate(ctx); err != nil {
		return nil, err
	}
	return uc, nil
}
