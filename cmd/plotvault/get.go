package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/plotvault/plotvault"
	"github.com/plotvault/plotvault/container"
	"github.com/plotvault/plotvault/core"
	"github.com/plotvault/plotvault/store"
)

var (
	getOut string
	getTo  string

	// getCmd retrieves a single revision from the container
	getCmd = &cobra.Command{
		Use:   "get <base> <version>",
		Short: "Retrieve one revision of a plot",
		Long: `Retrieve one revision of a plot family and write it out.

By default the raw artifact is written to <base>_v<version>.bin in the
current directory; --out chooses another path, and --out - streams the
bytes to stdout. With --to the revision is instead copied into another
sqlite container, together with its comment and tag.`,
		Args: cobra.ExactArgs(2),
		RunE: runGet,
	}

	getSuccessIcon = SuccessStyle.Render("✓")
	getErrorIcon   = ErrorStyle.Render("✗")
)

func init() {
	getCmd.Flags().StringVarP(&getOut, "out", "o", "", "output file (default <base>_v<version>.bin, '-' for stdout)")
	getCmd.Flags().StringVar(&getTo, "to", "", "copy into another container file instead of writing a file")
}

func runGet(cmd *cobra.Command, args []string) error {
	base := args[0]
	version, err := strconv.Atoi(args[1])
	if err != nil || version < 1 {
		return fmt.Errorf("invalid version %q: expected a positive number", args[1])
	}

	s, err := openSession(core.ModeRead)
	if err != nil {
		return fmt.Errorf("open container: %w", err)
	}
	defer s.Close()

	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	data, err := s.Get(base, version)
	if err != nil {
		if errors.Is(err, core.ErrNotFound) {
			fmt.Fprintf(stderr, "%s no revision %d of plot %q\n", getErrorIcon, version, base)
			cmd.SilenceUsage = true
			cmd.SilenceErrors = true
			return &ExitError{Code: 2, Err: err}
		}
		return err
	}

	if getTo != "" {
		copied, err := copyToContainer(s, base, version, data, getTo)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s copied %s revision %d into %s as revision %d\n",
			getSuccessIcon, PlotStyle.Render(base), version, getTo, copied)
		return nil
	}

	out := getOut
	if out == "" {
		out = defaultOutPath(base, version)
	}

	// Keep stdout clean for piping when the artifact itself goes there.
	info := stdout
	if out == "-" {
		info = stderr
	}
	fmt.Fprintf(info, "Loading %s revision %d\n", PlotStyle.Render(base), version)
	if comment, err := s.GetComment(base, version); err == nil && comment != "" {
		fmt.Fprintf(info, " -> %s\n", SubtitleStyle.Render(comment))
	} else if err != nil && !errors.Is(err, core.ErrNotFound) {
		return err
	}

	if out == "-" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("write artifact: %w", err)
		}
		return nil
	}

	if err := os.WriteFile(out, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(stdout, "%s wrote %s (%d bytes)\n", getSuccessIcon, out, len(data))
	return nil
}

// defaultOutPath names the output file for one revision.
func defaultOutPath(base string, version int) string {
	return fmt.Sprintf("%s_v%d.bin", base, version)
}

// copyToContainer opens the destination container and re-saves the revision
// there with its annotations.
func copyToContainer(src *store.Store[[]byte], base string, version int, data []byte, dest string) (int, error) {
	dst, err := plotvault.Open(func(o *plotvault.Options) {
		o.ContainerConfig = container.Config{
			Backend: container.BackendSQLite,
			Path:    dest,
			Mode:    core.ModeUpdate,
		}
	})
	if err != nil {
		return 0, fmt.Errorf("open destination container: %w", err)
	}

	copied, err := copyRevision(src, dst, base, version, data)
	if err != nil {
		_ = dst.Close()
		return 0, err
	}
	if err := dst.Close(); err != nil {
		return 0, fmt.Errorf("close destination container: %w", err)
	}
	return copied, nil
}

// copyRevision saves data as the next revision of base in dst and carries the
// source revision's comment and tag over to it. The destination numbers its
// own revisions, so the copy usually lands on a different version.
func copyRevision(src, dst *store.Store[[]byte], base string, version int, data []byte) (int, error) {
	copied, err := dst.Save(base, data)
	if err != nil {
		return 0, fmt.Errorf("copy artifact: %w", err)
	}

	if comment, err := src.GetComment(base, version); err == nil {
		if err := dst.Comment(comment); err != nil {
			return 0, fmt.Errorf("copy comment: %w", err)
		}
	} else if !errors.Is(err, core.ErrNotFound) {
		return 0, err
	}

	if tag, err := src.GetTag(base, version); err == nil {
		if err := dst.Tag(tag); err != nil {
			return 0, fmt.Errorf("copy tag: %w", err)
		}
	} else if !errors.Is(err, core.ErrNotFound) {
		return 0, err
	}

	return copied, nil
}
