package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/openmotion/bit2header/internal/config"
	"github.com/openmotion/bit2header/internal/header"
	"github.com/openmotion/bit2header/pkg/log"
	"github.com/openmotion/bit2header/version"
	"github.com/spf13/cobra"
)

// UsageError reports an invocation with fewer than three positional arguments.
type UsageError struct {
	Got int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected 3 arguments, got %d", e.Got)
}

// rootOptions holds the values bound to the root command's flags.
type rootOptions struct {
	configPath     string
	logLevel       string
	logFile        string
	allowAnySymbol bool
	verify         bool
}

// rootCmd represents the bit2header command.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "bit2header <input-file> <output-header-file> <array-symbol-name>",
		Short: "Convert a binary file into a C header declaring a uint8_t array",
		Long: `bit2header reads a binary file, such as an FPGA bitstream or a firmware image,
and writes a C header that declares its bytes as a const uint8_t array together
with an include guard and a <SYMBOL>_SIZE macro.`,
		Version:       version.Version,
		Args:          requireArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEmit(cmd, opts, args)
		},
	}

	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	cmd.Flags().BoolVar(&opts.allowAnySymbol, "allow-any-symbol", false, "Do not check that the symbol is a C identifier")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Decode the written header and compare it with the input")
	return cmd
}

// requireArgs rejects invocations with fewer than three positional arguments.
// Extra arguments are ignored.
func requireArgs(cmd *cobra.Command, args []string) error {
	if len(args) < 3 {
		return &UsageError{Got: len(args)}
	}
	return nil
}

// Execute runs the root command and exits with its status code.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	os.Exit(run(rootCmd, os.Args[1:], os.Stdout, os.Stderr))
}

// run executes cmd with args and maps the outcome to a process exit status.
// Usage problems are reported on stdout, everything else on stderr.
func run(cmd *cobra.Command, args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when given nil.
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		fmt.Fprintf(stdout, "Usage: %s input.bit output.h array_name\n", cmd.Name())
		return 1
	}
	printError(stderr, diagnostic(err))
	return 1
}

// diagnostic renders err the way the user should see it.
func diagnostic(err error) string {
	var inErr *header.InputOpenError
	var outErr *header.OutputOpenError
	switch {
	case errors.As(err, &inErr):
		return fmt.Sprintf("Failed to open input file: %v", inErr.Err)
	case errors.As(err, &outErr):
		return fmt.Sprintf("Failed to open output file: %v", outErr.Err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// runEmit resolves configuration, initializes logging and writes the header.
//
// Parameters:
//   - cmd: The executing command, used for flag state and output streams.
//   - opts: Values bound to the command's flags.
//   - args: Input path, output path and symbol.
//
// Returns:
//   - error: An error if configuration, emission or verification fails.
func runEmit(cmd *cobra.Command, opts *rootOptions, args []string) error {
	inputPath, outputPath, symbol := args[0], args[1], args[2]

	cfg := &config.Config{}
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") || opts.configPath == "" {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("log-file") {
		cfg.Logging.Path = opts.logFile
	}
	if flags.Changed("allow-any-symbol") {
		cfg.Symbol.AllowAny = opts.allowAnySymbol
	}
	if flags.Changed("verify") {
		cfg.Verify = opts.verify
	}
	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer log.Close()

	res, err := header.Emit(inputPath, outputPath, symbol, header.Options{
		AllowAnySymbol: cfg.Symbol.AllowAny,
	})
	if err != nil {
		return err
	}
	slog.Debug("Header emitted", "output", res.OutputPath, "size", res.Size, "blake3", fmt.Sprintf("%x", res.Digest))

	if cfg.Verify {
		if err := header.Verify(inputPath, outputPath, symbol); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		slog.Info("Header verified", "output", outputPath, "size", res.Size)
	}

	printSuccess(cmd.OutOrStdout(), fmt.Sprintf("Header written to %s with %d bytes.", res.OutputPath, res.Size))
	return nil
}
