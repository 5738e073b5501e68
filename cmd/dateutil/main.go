package main

import (
	"fmt"
	"os"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/username/dateutil/internal/config"
	"github.com/username/dateutil/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(exitCode(err))
	}
}

// app carries what every subcommand needs once the root has loaded config
type app struct {
	configPath string
	formatName string
	outputName string

	clock  clockwork.Clock
	cfg    *config.Config
	logger *zap.Logger
	util   *dateutil.Util
	format dateutil.DateFormat
}

// newRootCmd builds the command tree. A nil clock means the real clock.
func newRootCmd(clock clockwork.Clock) *cobra.Command {
	a := &app{clock: clock, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "dateutil",
		Short:         "Calendar arithmetic, formatting and range checks",
		Long:          "Shorthand for everyday date math: differences, increments, period boundaries, parsing and formatting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (default: ./config.yaml, $HOME/.dateutil, /etc/dateutil)")
	rootCmd.PersistentFlags().StringVarP(&a.formatName, "format", "f", "", "Date format: iso8601, rfc2822, us, uk, eu, custom (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&a.outputName, "output", "o", "", "Output: text, json, yaml (overrides config)")

	rootCmd.AddCommand(
		nowCmd(a),
		diffCmd(a),
		shiftCmd(a, "add", "Add an amount of units to a date", 1),
		shiftCmd(a, "sub", "Subtract an amount of units from a date", -1),
		convertCmd(a),
		checkFormatCmd(a),
		inRangeCmd(a),
		leapCmd(a),
		daysInMonthCmd(a),
		boundsCmd(a),
		relativeCmd(a),
	)

	// cobra's own argument and flag errors are usage errors
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})
	for _, cmd := range rootCmd.Commands() {
		if cmd.Args != nil {
			cmd.Args = usageArgs(cmd.Args)
		}
	}

	return rootCmd
}

func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return usageError(err)
		}
		return nil
	}
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if a.formatName != "" {
		cfg.Format = a.formatName
	}
	if a.outputName != "" {
		cfg.Output = a.outputName
	}
	if err := cfg.Validate(); err != nil {
		return usageError(fmt.Errorf("invalid flags: %w", err))
	}
	a.cfg = cfg
	a.format = cfg.GetDateFormat()

	if cfg.Log.File != "" {
		a.logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
	} else {
		a.logger, err = initLogger(cfg.Log.Level)
		if err != nil {
			return err
		}
	}

	a.util = dateutil.New(
		dateutil.WithClock(a.clock),
		dateutil.WithLocation(cfg.GetLocation()),
		dateutil.WithLogger(a.logger.Named("dateutil")),
	)

	a.logger.Debug("Configuration loaded",
		zap.String("format", cfg.Format),
		zap.String("location", cfg.Location),
		zap.String("output", cfg.Output))

	return nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}
	return zapLevel
}

func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}
