// Command adi2edi converts ADIF logs to REG1TEST (EDI) contest logs.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jj1bdx/adi2edi/config"
)

var (
	// Global flags
	verbose      bool
	configPath   string
	bandFromFreq bool
	// Convert flags
	toFile      bool
	skipRemarks bool

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "adi2edi <file.adi> [file.edi]",
	Short: "Convert an ADIF log to REG1TEST (EDI) format",
	Long: `Converts an ADIF log to REG1TEST (EDI), one section per band.

Without an output file and without -f the result is printed to stdout.
When the log covers several bands and is written to a file, one file per
band is created, named after the band: log_144MHz.edi, log_432MHz.edi.`,
	Args:          cobra.RangeArgs(1, 2),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = loadConfig(cmd); err != nil {
			return err
		}
		level, err := cfg.Level()
		if err != nil {
			return err
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		if logger, err = newLogger(level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runConvert,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVar(&bandFromFreq, "band-from-freq", false, "derive the band from FREQ when BAND is missing")

	rootCmd.Flags().BoolVarP(&toFile, "to-file", "f", false, "output to file(s) named after the input")
	rootCmd.Flags().BoolVarP(&skipRemarks, "skip-remarks", "s", false, "no remarks in EDI file")

	dumpCmd.Flags().BoolVar(&dumpADIF, "adif", false, "print records as ADIF instead of the parse tree")
	dumpCmd.Flags().BoolVar(&dumpDedupe, "dedupe", false, "drop duplicate records (implies --adif)")
	dumpCmd.Flags().BoolVar(&dumpSort, "sort", false, "sort records by QSO time (implies --adif)")
	dumpCmd.Flags().BoolVarP(&dumpReverse, "reverse", "r", false, "with --sort, new to old")

	rootCmd.AddCommand(dumpCmd, statsCmd)
}

// loadConfig reads --config, if any, and lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	c := config.Default()
	if configPath != "" {
		var err error
		if c, err = config.Load(configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("to-file") {
		c.ToFile = toFile
	}
	if flags.Changed("skip-remarks") {
		c.SkipRemarks = skipRemarks
	}
	if flags.Changed("band-from-freq") {
		c.BandFromFreq = bandFromFreq
	}
	return c, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
