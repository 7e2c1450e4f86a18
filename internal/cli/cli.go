package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/plantgen/internal/app"
	"github.com/vk/plantgen/internal/generate"
	"github.com/vk/plantgen/internal/mapping"
	"github.com/vk/plantgen/internal/usda"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable flag that also splits comma-separated values.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(value string) error {
	for _, v := range strings.Split(value, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("plantgen", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
plantgen - Batch botanical illustration generator for a plant catalog.

Usage:
  plantgen [options] [COMMAND]

Commands:
  generate  Generate missing plant images and write the image mapping (default).
  missing   List catalog plants that have no image yet.
  fetch     Fetch Virginia wetland plants from USDA PLANTS into a YAML catalog.

Options:
`)
		flagSet.PrintDefaults()
	}

	var catalogPaths, symbols stringList
	flagSet.Var(&catalogPaths, "catalog", "Catalog file or directory (.hcl, .yaml, .yml). Repeatable. Defaults to the built-in catalog.")
	outDirFlag := flagSet.String("out", "public/plants", "Directory the images are written to.")
	mappingFlag := flagSet.String("mapping", "", "Path of the image mapping JSON. Defaults to "+mapping.DefaultFileName+" next to the image directory.")
	prefixFlag := flagSet.String("prefix", mapping.DefaultPrefix, "Public URL prefix of the images in the mapping.")

	toolFlag := flagSet.String("tool", generate.DefaultCommand, "Image generation command.")
	modelFlag := flagSet.String("model", generate.DefaultModel, "Model passed to the generation command.")
	widthFlag := flagSet.Int("width", generate.DefaultSize, "Image width in pixels.")
	heightFlag := flagSet.Int("height", generate.DefaultSize, "Image height in pixels.")
	stepsFlag := flagSet.Int("steps", generate.DefaultSteps, "Inference steps.")
	timeoutFlag := flagSet.Duration("timeout", generate.DefaultTimeout, "Time limit for a single image.")

	flagSet.Var(&symbols, "symbols", "USDA symbols to fetch, comma-separated. Defaults to the Virginia wetland list.")
	usdaURLFlag := flagSet.String("usda-url", usda.DefaultBaseURL, "Base URL of the USDA PLANTS API.")
	fetchOutFlag := flagSet.String("fetch-out", app.DefaultFetchOut, "Path of the YAML catalog written by fetch.")
	fetchDelayFlag := flagSet.Duration("fetch-delay", usda.DefaultDelay, "Pause between fetched symbols.")

	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	parse := func(args []string) error {
		if err := flagSet.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return err
			}
			return &ExitError{Code: 2, Message: err.Error()}
		}
		return nil
	}

	// Flags may appear on either side of the command.
	err := parse(args)
	command := app.CommandGenerate
	if err == nil && flagSet.NArg() > 0 {
		command = strings.ToLower(flagSet.Arg(0))
		err = parse(flagSet.Args()[1:])
	}
	if errors.Is(err, flag.ErrHelp) {
		return nil, true, nil
	}
	if err != nil {
		return nil, false, err
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	slog.Debug("Arguments parsed successfully.", "command", command)

	if command == "help" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, cfgErr := app.NewConfig(app.Config{
		Command:      command,
		CatalogPaths: catalogPaths,
		OutDir:       *outDirFlag,
		MappingPath:  *mappingFlag,
		PublicPrefix: *prefixFlag,
		Tool:         *toolFlag,
		Model:        *modelFlag,
		Width:        *widthFlag,
		Height:       *heightFlag,
		Steps:        *stepsFlag,
		Timeout:      *timeoutFlag,
		Symbols:      symbols,
		USDABaseURL:  *usdaURLFlag,
		FetchOut:     *fetchOutFlag,
		FetchDelay:   *fetchDelayFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if cfgErr != nil {
		return nil, false, &ExitError{Code: 2, Message: cfgErr.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "command", config.Command)
	return config, false, nil
}
