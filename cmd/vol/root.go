package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"vol/internal/device"
	"vol/internal/logging"
	"vol/internal/volume"
)

const version = "1.0.0"

const longHelp = `Show or modify the volume levels of an audio output device.

Adjustments have the syntax [channel][operation]value.

  channel is optional and is one of
    'l'  the left channel (channel 0)
    'r'  the right channel (channel 1)
    'a'  all channels
    'm'  the master level
    N    channel number N
  Omitted, the adjustment applies to the master level.

  operation is '+' (raise), '-' (lower), or '=' (set).
  Omitted, the adjustment is a set.

  value is one of
    N    a percentage from 0 to 100
    'l'  the left channel's current level
    'r'  the right channel's current level
    'm'  the current master level
    cN   channel N's current level

All references read the levels as they were before the command started, so
"l=r r=l" swaps the two channels exactly. Without adjustments, the current
levels are printed and nothing is changed.`

const exampleHelp = `  vol 100          set the master level to 100
  vol l40 r60      set the left channel to 40 and the right to 60
  vol +10          raise the master level by 10
  vol a=m          set every channel to the master level
  vol l=r r=l      swap the left and right channels
  vol --device Headphones -- -20`

func newRootCommand(backend device.Backend) *cobra.Command {
	return newRootCommandWithLockDir(backend, "")
}

// newRootCommandWithLockDir exists so tests can keep the commit lock inside
// a temporary directory.
func newRootCommandWithLockDir(backend device.Backend, lockDir string) *cobra.Command {
	var (
		configFlag   string
		deviceFlag   string
		logLevelFlag string
		listFlag     bool
		jsonFlag     bool
		quietFlag    bool
		forceFlag    bool
	)

	ctx := newCommandContext(backend, &configFlag)
	ctx.lockDir = lockDir

	cmd := &cobra.Command{
		Use:           "vol [flags] [adjustment...]",
		Short:         "Show or modify the volume levels of an audio output device",
		Long:          longHelp,
		Example:       exampleHelp,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions{
				device: deviceFlag,
				list:   listFlag,
				json:   jsonFlag,
				quiet:  quietFlag,
				force:  forceFlag,
			}
			opts.quietFromConfig = !cmd.Flags().Changed("quiet")
			opts.logLevel = logLevelFlag
			opts.logLevelSet = cmd.Flags().Changed("log-level")
			return run(cmd, ctx, args, opts)
		},
	}

	cmd.Flags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	cmd.Flags().StringVarP(&deviceFlag, "device", "d", "", "Output device name or id (default: the system default output)")
	cmd.Flags().BoolVar(&listFlag, "list", false, "List the available output devices and exit")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print levels and device lists as JSON")
	cmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "After modifications, do not print the new levels")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Allow the device to be silenced completely")
	cmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log verbosity: debug, info, warn, or error")

	return cmd
}

type runOptions struct {
	device          string
	list            bool
	json            bool
	quiet           bool
	quietFromConfig bool
	force           bool
	logLevel        string
	logLevelSet     bool
}

func run(cmd *cobra.Command, ctx *commandContext, tokens []string, opts runOptions) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	if opts.quietFromConfig {
		opts.quiet = cfg.Quiet
	}

	level := cfg.LogLevel
	if opts.logLevelSet {
		level = opts.logLevel
	}
	logger, err := logging.New(logging.Options{Level: level, Format: cfg.LogFormat, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}
	log := logging.WithInvocation(logger)

	out := cmd.OutOrStdout()

	if opts.list {
		return listDevices(out, ctx.backend, opts.json)
	}

	// Tokens are parsed before the device is opened, so grammar errors
	// report even when the device selector is bad.
	ops, err := volume.ParseCommand(tokens)
	if err != nil {
		return err
	}

	selector := opts.device
	if selector == "" {
		selector = cfg.DefaultDevice
	}
	ep, err := device.Select(ctx.backend, selector)
	if err != nil {
		return err
	}
	defer ep.Close()
	log = log.With(slog.String("device", ep.Info().Name))

	if len(ops) == 0 {
		snap, err := ep.Snapshot()
		if err != nil {
			return fmt.Errorf("read levels: %w", err)
		}
		return printLevels(out, ep.Info(), snap, opts.json)
	}

	// The lock covers the snapshot-to-commit window so concurrent
	// invocations cannot interleave their reads and writes.
	lock, err := device.NewCommitLock(ctx.lockDir)
	if err != nil {
		return err
	}
	if err := lock.Acquire(); err != nil {
		return err
	}
	defer lock.Release()

	snap, err := ep.Snapshot()
	if err != nil {
		return fmt.Errorf("read levels: %w", err)
	}
	log.Debug("snapshot captured", slog.Float64("master", snap.Master), slog.Int("channels", len(snap.Channels)))

	resolved, err := volume.Resolve(ops, snap)
	if err != nil {
		return err
	}

	if !opts.force && volume.Silences(snap, resolved) {
		return errors.New("refusing to silence the device completely\nhint: use --force to override this behaviour")
	}

	if err := device.Apply(ep, resolved); err != nil {
		return err
	}
	log.Info("levels applied", slog.Int("writes", len(resolved)))

	if opts.quiet {
		return nil
	}
	after, err := ep.Snapshot()
	if err != nil {
		return fmt.Errorf("read levels after apply: %w", err)
	}
	return printLevels(out, ep.Info(), after, opts.json)
}
