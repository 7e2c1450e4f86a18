package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vk/plantgen/internal/app"
	"github.com/vk/plantgen/internal/usda"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	// --- Act ---
	cfg, shouldExit, err := Parse(nil, &bytes.Buffer{})

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, app.CommandGenerate, cfg.Command)
	require.Empty(t, cfg.CatalogPaths)
	require.Equal(t, "public/plants", cfg.OutDir)
	require.Equal(t, filepath.Join("public", "plant-images.json"), cfg.MappingPath)
	require.Equal(t, "/plants", cfg.PublicPrefix)
	require.Equal(t, "mflux-generate", cfg.Tool)
	require.Equal(t, "schnell", cfg.Model)
	require.Equal(t, 512, cfg.Width)
	require.Equal(t, 512, cfg.Height)
	require.Equal(t, 4, cfg.Steps)
	require.Equal(t, 120*time.Second, cfg.Timeout)
	require.Equal(t, usda.VirginiaWetlandSymbols, cfg.Symbols)
	require.Equal(t, "text", cfg.LogFormat)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParse_CommandAndFlags(t *testing.T) {
	t.Parallel()

	args := []string{
		"-catalog", "trees.hcl",
		"-log-level", "DEBUG",
		"fetch",
		"-catalog", "herbs.yaml,grasses.yml",
		"-symbols", "ACRU, OSRE",
		"-timeout", "30s",
		"-out", "site/img/plants",
		"-log-format", "json",
	}

	cfg, shouldExit, err := Parse(args, &bytes.Buffer{})

	require.NoError(t, err)
	require.False(t, shouldExit)
	require.Equal(t, app.CommandFetch, cfg.Command)
	require.Equal(t, []string{"trees.hcl", "herbs.yaml", "grasses.yml"}, cfg.CatalogPaths)
	require.Equal(t, []string{"ACRU", "OSRE"}, cfg.Symbols)
	require.Equal(t, 30*time.Second, cfg.Timeout)
	require.Equal(t, filepath.Join("site", "img", "plant-images.json"), cfg.MappingPath)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	for _, args := range [][]string{{"-h"}, {"help"}, {"missing", "-help"}} {
		out := &bytes.Buffer{}
		cfg, shouldExit, err := Parse(args, out)

		require.NoError(t, err, "args %v", args)
		require.True(t, shouldExit, "args %v", args)
		require.Nil(t, cfg)
		require.Contains(t, out.String(), "Usage:")
	}
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"-nope"}, wantMsg: "flag provided but not defined: -nope"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, wantMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud"}, wantMsg: "invalid log-level"},
		{name: "unknown command", args: []string{"paint"}, wantMsg: `unknown command "paint"`},
		{name: "extra arguments", args: []string{"generate", "missing"}, wantMsg: "unexpected arguments: missing"},
		{name: "invalid size", args: []string{"-width", "0"}, wantMsg: "image size must be positive"},
		{name: "bad duration", args: []string{"-timeout", "soon"}, wantMsg: "invalid value"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Nil(t, cfg)
			require.False(t, shouldExit)
			var exitErr *ExitError
			require.True(t, errors.As(err, &exitErr), "expected *ExitError, got %T", err)
			require.Equal(t, 2, exitErr.Code)
			require.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}
