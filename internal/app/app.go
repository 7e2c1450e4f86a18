package app

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/vk/plantgen/internal/config"
	"github.com/vk/plantgen/internal/generate"
	"github.com/vk/plantgen/internal/hcl"
	"github.com/vk/plantgen/internal/yaml"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	config     *Config
	runID      string
	loader     config.Loader
	tool       generate.Tool
	httpClient *http.Client
}

// NewApp is the constructor for the main application. Console output goes to
// outW and structured logs to logW. A nil tool selects the exec-backed tool
// named by cfg.Tool.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader, tool generate.Tool) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.", "command", cfg.Command)

	if tool == nil {
		tool = generate.NewExecTool(cfg.Tool)
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		runID:  runID,
		loader: loader,
		tool:   tool,
	}
}

// RunID returns the identifier attached to every log record of this App.
func (a *App) RunID() string {
	return a.runID
}

// SetHTTPClient overrides the client used by the fetch command.
func (a *App) SetHTTPClient(c *http.Client) {
	a.httpClient = c
}

// NewCatalogLoader returns the catalog loader wired into the binary: HCL and
// YAML files routed by extension.
func NewCatalogLoader() config.Loader {
	return config.NewRouter(hcl.NewLoader(), yaml.NewLoader())
}
