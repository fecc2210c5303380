package main

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/desertwitch/fsprobe/internal/filesystem"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func (app *App) mountPointCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mountpoint PATH",
		Short: "Print the mount point of the filesystem containing PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("(app-mountpoint) failed to abs: %w", err)
			}

			mountPoint, err := app.fsHandler.MountPoint(path)
			if err != nil {
				return fmt.Errorf("(app-mountpoint) %w", err)
			}

			fmt.Fprintln(app.out, mountPoint)

			return nil
		},
	}
}

func (app *App) filesystemNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fsname MOUNTPOINT",
		Short: "Print the source of the filesystem mounted at MOUNTPOINT",
		Long: "Print the source of the filesystem mounted at MOUNTPOINT, as listed in the mount table.\n" +
			"MOUNTPOINT is matched exactly, as printed by the mountpoint subcommand. Linux only.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			name, err := app.fsHandler.FilesystemName(args[0])
			if err != nil {
				return fmt.Errorf("(app-fsname) %w", err)
			}

			fmt.Fprintln(app.out, name)

			return nil
		},
	}
}

func (app *App) spaceCommand() *cobra.Command {
	var required string

	cmd := &cobra.Command{
		Use:   "space PATH",
		Short: "Show the free space of the filesystem containing PATH",
		Long: "Show the free space of the filesystem containing PATH.\n" +
			"With --required the exit code is 1 when less than the required space is free.\n" +
			"The check is advisory: free space may change right after it.",
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			requiredBytes := app.config.RequiredBytes
			if required != "" {
				parsed, err := humanize.ParseBytes(required)
				if err != nil {
					return fmt.Errorf("(app-space) invalid --required: %w", err)
				}
				requiredBytes = parsed
			}

			stats, err := app.fsHandler.AvailableSpace(args[0])
			if err != nil {
				return fmt.Errorf("(app-space) %w", err)
			}

			pairs := statsPairs(stats)

			if requiredBytes > 0 {
				verdict, enough := requiredPairs(stats, requiredBytes)
				pairs = append(pairs, verdict...)
				if !enough {
					app.exitCode = 1
				}
			}

			fmt.Fprintln(app.out, renderPairs(args[0], pairs))

			return nil
		},
	}

	cmd.Flags().StringVar(&required, "required", "", "required free space, e.g. 500MiB (default from configuration)")

	return cmd
}

func (app *App) startsWithCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "startswith PATH PREFIX",
		Short: "Check whether PATH lies within PREFIX",
		Long: "Check whether PATH lies within PREFIX, comparing canonical path components.\n" +
			"Prints true or false; the exit code is 1 for false.",
		Args: cobra.ExactArgs(2), //nolint:mnd
		RunE: func(_ *cobra.Command, args []string) error {
			result := app.fsHandler.StartsWith(args[0], args[1])
			if !result {
				app.exitCode = 1
			}

			fmt.Fprintln(app.out, strconv.FormatBool(result))

			return nil
		},
	}
}

func (app *App) tempFileCommand() *cobra.Command {
	var keep bool

	cmd := &cobra.Command{
		Use:   "tempfile [DIR]",
		Short: "Create a temporary file in DIR, creating DIR if needed",
		Long: "Create a temporary file in DIR, creating DIR and its parents if needed, and print its path.\n" +
			"The file is removed again unless --keep is given. DIR defaults to the configured directory.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := app.config.TempDir
			if len(args) > 0 {
				dir = args[0]
			}

			tmp, err := app.fsHandler.CreateTemporaryFile(dir)
			if err != nil {
				return fmt.Errorf("(app-tempfile) %w", err)
			}

			fmt.Fprintln(app.out, tmp.Path())

			if keep {
				if err := tmp.Close(); err != nil {
					return fmt.Errorf("(app-tempfile) failed to close: %w", err)
				}

				return nil
			}

			if err := tmp.Release(); err != nil {
				return fmt.Errorf("(app-tempfile) %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&keep, "keep", false, "keep the temporary file")

	return cmd
}

func (app *App) reportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report PATH",
		Short: "Show device, mount point, filesystem and space of PATH",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			path, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("(app-report) failed to abs: %w", err)
			}

			deviceID, err := app.fsHandler.DeviceID(path)
			if err != nil {
				return fmt.Errorf("(app-report) %w", err)
			}

			mountPoint, err := app.fsHandler.MountPoint(path)
			if err != nil {
				return fmt.Errorf("(app-report) %w", err)
			}

			pairs := []pair{
				{"Device", strconv.FormatUint(uint64(deviceID), 10)},
				{"Mount point", mountPoint},
			}

			entry, err := app.fsHandler.MountEntry(mountPoint)
			switch {
			case errors.Is(err, filesystem.ErrNotImplemented):
				pairs = append(pairs, pair{"Filesystem", "unsupported on this platform"})
			case err != nil:
				slog.Warn("Failed to look up the filesystem name.",
					"mountPoint", mountPoint,
					"mountTable", app.fsHandler.MountTable(),
					"err", err,
				)
				pairs = append(pairs, pair{"Filesystem", "unknown"})
			default:
				pairs = append(pairs,
					pair{"Filesystem", entry.Source},
					pair{"Type", entry.Type},
					pair{"Options", entry.Options},
				)
			}

			stats, err := app.fsHandler.AvailableSpace(path)
			if err != nil {
				return fmt.Errorf("(app-report) %w", err)
			}
			pairs = append(pairs, statsPairs(stats)...)

			fmt.Fprintln(app.out, renderPairs(path, pairs))

			return nil
		},
	}
}
