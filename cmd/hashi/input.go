package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/hashi/codec"
	"github.com/katalvlaran/hashi/core"
)

var errUnsupportedInput = errors.New("unsupported input file")

// loadIslands reads a puzzle file, picking the form from its extension.
func loadIslands(path string) (map[core.Point]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		gg, err := codec.ParseText(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return gg.Islands(), nil
	case ".yaml", ".yml":
		islands, err := codec.DecodeYAML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return islands, nil
	default:
		return nil, fmt.Errorf("%w: %s (want .txt, .yaml or .yml)", errUnsupportedInput, path)
	}
}

// loadBoard reads a puzzle file into a fresh board logging to logger.
func loadBoard(path string, logger *slog.Logger) (*core.Board, error) {
	islands, err := loadIslands(path)
	if err != nil {
		return nil, err
	}
	b, err := core.FromMap(islands, core.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return b, nil
}
