package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/limaJavier/coursetable/internal/config"
	"github.com/limaJavier/coursetable/internal/locale"
	"github.com/limaJavier/coursetable/internal/logger"
	"github.com/limaJavier/coursetable/pkg/model"
	"github.com/limaJavier/coursetable/pkg/obs"
)

// session bundles everything a command needs once flags and configuration are resolved
type session struct {
	config   config.Config
	locale   *locale.Locale
	logger   *zap.Logger
	searcher model.Searcher
	styles   *styles
	in       *bufio.Reader
	catalog  *model.Catalog
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	// Flags override the configuration
	if cmd.Flags().Changed("locale") {
		cfg.Locale = localeFlag
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = strategyFlag
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc, err := locale.Get(cfg.Locale)
	if err != nil {
		return nil, err
	}
	zapLogger, err := logger.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		return nil, fmt.Errorf("cannot initialize logger: %w", err)
	}

	return &session{
		config:   cfg,
		locale:   loc,
		logger:   zapLogger,
		searcher: model.Strategies[cfg.Strategy](),
		styles:   newStyles(),
		in:       bufio.NewReader(cmd.InOrStdin()),
	}, nil
}

// Reads the catalog from --file, or from pasted text on the standard input
func (s *session) loadCatalog(cmd *cobra.Command) error {
	if jsonCatalog {
		if inputFile == "" {
			return errors.New("--json requires --file")
		}
		catalog, err := model.CatalogFromJson(inputFile)
		if err != nil {
			return err
		}
		s.catalog = catalog
		return nil
	}

	var text string
	if inputFile != "" {
		bytes, err := os.ReadFile(inputFile)
		if err != nil {
			return fmt.Errorf("cannot read input file: %w", err)
		}
		text = string(bytes)
	} else {
		cmd.Println(s.locale.Welcome)
		pasted, err := obs.ReadPasted(s.in, s.config.BlankLines)
		if err != nil {
			return err
		}
		text = pasted
	}

	formatted := obs.Format(text, s.locale.NotEntered)
	s.logger.Debug("input formatted", zap.Int("bytes", len(formatted)))

	catalog, err := obs.NewParser(s.locale.Unassigned, s.logger).Parse(formatted)
	if err != nil {
		return err
	}
	s.catalog = catalog
	return nil
}

func (s *session) close() {
	_ = s.logger.Sync()
}
