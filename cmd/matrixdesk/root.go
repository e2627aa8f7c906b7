// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ETsETs777/Matrix-Desktop/config"
	"github.com/ETsETs777/Matrix-Desktop/dispatch"
	"github.com/ETsETs777/Matrix-Desktop/session"
)

// app is the state shared by every subcommand once PersistentPreRunE ran.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "matrixdesk",
		Short: "Text-driven linear algebra evaluator",
		Long: `matrixdesk parses matrices written as text and evaluates one of the
catalog operations on them: arithmetic, determinants, inverses, solving,
decompositions (eig, SVD, LU, QR, Cholesky), norms and a step-by-step RREF.

Settings come from --config (YAML) and MATRIXDESK_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newOpsCmd(),
		newEvalCmd(a),
		newRREFCmd(a),
		newReplCmd(a),
		newExportCmd(a),
		newImportCmd(a),
	)

	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())
	if a.verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if cfg.LogFormat == config.LogFormatConsole {
		zc.Encoding = config.LogFormatConsole
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	logger, err := zc.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger.Named("matrixdesk")

	return nil
}

func (a *app) dispatcher() *dispatch.Dispatcher {
	opts := append(a.cfg.DispatchOptions(), dispatch.WithLogger(a.logger))

	return dispatch.New(opts...)
}

func (a *app) session() *session.Session {
	return session.New(
		session.WithDispatcher(a.dispatcher()),
		session.WithHistory(a.cfg.History()),
		session.WithLogger(a.logger),
	)
}
