package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/cricket-team/internal/app"
	"github.com/riskibarqy/cricket-team/internal/usecase"
	"github.com/spf13/cobra"
)

// containerFactory opens the storage the command runs against. useMemory
// swaps Postgres for process-local repositories.
type containerFactory func(ctx context.Context, useMemory bool) (*app.Container, error)

func newRootCmd(build containerFactory, out io.Writer) *cobra.Command {
	var useMemory bool

	root := &cobra.Command{
		Use:           "clubctl",
		Short:         "Operate the cricket team database",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVar(&useMemory, "memory", false, "run against in-memory repositories instead of DB_URL")

	withContainer := func(fn func(cmd *cobra.Command, c *app.Container, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			c, err := build(cmd.Context(), useMemory)
			if err != nil {
				return err
			}
			defer c.Close()
			return fn(cmd, c, args)
		}
	}

	root.AddCommand(
		newSeedCmd(withContainer),
		newSampleMatchCmd(withContainer),
		newExportCmd(withContainer),
		newImportCmd(withContainer),
		newLockMatchesCmd(withContainer),
	)
	return root
}

type runWithContainer func(fn func(cmd *cobra.Command, c *app.Container, args []string) error) func(*cobra.Command, []string) error

func newSeedCmd(with runWithContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the starter season, roster and fixtures into an empty database",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, c *app.Container, _ []string) error {
			result, err := c.Seed.Seed(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		}),
	}
}

func newSampleMatchCmd(with runWithContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "sample-match",
		Short: "Add a completed, locked sample match to the active season",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, c *app.Container, _ []string) error {
			m, err := c.Seed.AddCompletedSampleMatch(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), m)
		}),
	}
}

func newExportCmd(with runWithContainer) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a full snapshot of the club data as JSON",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, c *app.Container, _ []string) error {
			snap, err := c.Services.DataTransfer.Export(cmd.Context())
			if err != nil {
				return err
			}
			if outPath == "" || outPath == "-" {
				return writeJSON(cmd.OutOrStdout(), snap)
			}
			f, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("create %s: %w", outPath, err)
			}
			if err := writeJSON(f, snap); err != nil {
				_ = f.Close()
				return err
			}
			return f.Close()
		}),
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file, stdout when empty")
	return cmd
}

func newImportCmd(with runWithContainer) *cobra.Command {
	var inPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load a JSON snapshot produced by export",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, c *app.Container, _ []string) error {
			snap, err := readSnapshot(cmd.InOrStdin(), inPath)
			if err != nil {
				return err
			}
			result, err := c.Services.DataTransfer.Import(cmd.Context(), snap)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		}),
	}
	cmd.Flags().StringVarP(&inPath, "file", "f", "", "snapshot file, stdin when empty")
	return cmd
}

func newLockMatchesCmd(with runWithContainer) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "lock-matches",
		Short: "Lock every scheduled match whose start time has been reached",
		Args:  cobra.NoArgs,
		RunE: with(func(cmd *cobra.Command, c *app.Container, _ []string) error {
			now := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("parse --at: %w", err)
				}
				now = parsed
			}
			locked, err := c.Services.Matches.LockStartedMatches(cmd.Context(), now)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"locked": locked, "at": now.UTC()})
		}),
	}
	cmd.Flags().StringVar(&at, "at", "", "reference time in RFC3339, now when empty")
	return cmd
}

func readSnapshot(stdin io.Reader, path string) (usecase.Snapshot, error) {
	src := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return usecase.Snapshot{}, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		src = f
	}

	var snap usecase.Snapshot
	if err := sonic.ConfigDefault.NewDecoder(src).Decode(&snap); err != nil {
		return usecase.Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

func writeJSON(w io.Writer, v any) error {
	raw, err := sonic.ConfigDefault.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	raw = append(raw, '\n')
	_, err = w.Write(raw)
	return err
}
