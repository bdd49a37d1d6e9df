package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zeebo/headsum"
	"github.com/zeebo/headsum/internal/config"
	"github.com/zeebo/headsum/internal/logging"
)

type options struct {
	configPath string
	jobs       int
	format     string
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:           "headsum [flags] FILE...",
		Short:         "Fingerprint the first mebibyte of files",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, &opts, args)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "Files to hash concurrently (0 for one per CPU)")
	flags.StringVar(&opts.format, "format", "", "Output format: plain, json, or table")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, or error")
	flags.StringVar(&opts.logFormat, "log-format", "", "Log format: console or json")

	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// resolve loads the config file and layers any explicitly set flags on top.
func (o *options) resolve(cmd *cobra.Command) (*config.Config, error) {
	cfg, _, err := config.Load(o.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("jobs") {
		cfg.Jobs = o.jobs
	}
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(o.format))
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(o.logLevel))
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = strings.ToLower(strings.TrimSpace(o.logFormat))
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDigest(cmd *cobra.Command, opts *options, args []string) error {
	cfg, err := opts.resolve(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	logger = logger.With("run_id", uuid.NewString())

	start := time.Now()
	results, err := digestAll(cmd.Context(), cmd.InOrStdin(), args, cfg.Jobs)
	if err != nil {
		return err
	}

	ok := make([]headsum.Result, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			logger.Error("digest failed", "path", res.Path, "error", res.Err)
			continue
		}
		logger.Debug("digest computed", "path", res.Path, "digest", res.Digest)
		ok = append(ok, res)
	}

	out := cmd.OutOrStdout()
	if err := writeResults(out, resolveFormat(cfg.Format, out), ok); err != nil {
		return err
	}

	failed := len(results) - len(ok)
	logger.Debug("run complete",
		"files", len(results),
		"failed", failed,
		"jobs", cfg.Jobs,
		"elapsed", time.Since(start),
	)

	if failed > 0 {
		return fmt.Errorf("%d of %d files could not be fingerprinted", failed, len(results))
	}
	return nil
}

// digestAll fingerprints paths in order. Regular files are hashed
// concurrently; "-" reads stdin, at most once.
func digestAll(ctx context.Context, stdin io.Reader, paths []string, jobs int) ([]headsum.Result, error) {
	results := make([]headsum.Result, len(paths))

	var files []string
	var index []int
	for n, path := range paths {
		if path == "-" {
			continue
		}
		files = append(files, path)
		index = append(index, n)
	}

	fileResults, err := headsum.DigestFiles(ctx, files, jobs)
	if err != nil {
		return nil, err
	}
	for j, res := range fileResults {
		results[index[j]] = res
	}

	// stdin is fingerprinted once; every "-" reports that same result
	var piped *headsum.Result
	for n, path := range paths {
		if path != "-" {
			continue
		}

		if piped == nil {
			// an interrupted read is abandoned rather than waited on
			select {
			case res := <-headsum.Go(ctx, stdin):
				res.Path = path
				piped = &res
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		results[n] = *piped
	}

	return results, nil
}
