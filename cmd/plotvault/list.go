package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/plotvault/plotvault/core"
	"github.com/plotvault/plotvault/store"
)

var (
	// listCmd prints the revision history of the container
	listCmd = &cobra.Command{
		Use:   "list [base]",
		Short: "List plot families and their revisions",
		Long: `List the revision history stored in the container.

Families are numbered in the order they were first saved. Revisions are
printed newest first, one line per revision with its comment; a '*'
marks tagged milestones, with the tag message indented below.

With a base argument, only that family's history is shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runList,
	}
)

func runList(cmd *cobra.Command, args []string) error {
	base := ""
	if len(args) == 1 {
		base = args[0]
	}

	s, err := openSession(core.ModeRead)
	if err != nil {
		return fmt.Errorf("open container: %w", err)
	}
	defer s.Close()

	return renderList(cmd.OutOrStdout(), s, base)
}

// renderList prints the revision listing for one family, or for every family
// when base is empty.
func renderList(w io.Writer, s *store.Store[[]byte], base string) error {
	infos, err := s.List(base)
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		if base != "" {
			fmt.Fprintln(w, SubtitleStyle.Render("no revisions stored for "+base))
		} else {
			fmt.Fprintln(w, SubtitleStyle.Render("container is empty"))
		}
		return nil
	}

	// Group by family, keeping first-save order.
	var families []string
	byFamily := make(map[string][]core.VersionInfo)
	for _, info := range infos {
		if _, ok := byFamily[info.Base]; !ok {
			families = append(families, info.Base)
		}
		byFamily[info.Base] = append(byFamily[info.Base], info)
	}

	for i, family := range families {
		fmt.Fprintf(w, "%2d - %s\n", i+1, PlotStyle.Render(family))

		// Newest revision first, like the directory listings this layout
		// comes from.
		revs := byFamily[family]
		for j := len(revs) - 1; j >= 0; j-- {
			info := revs[j]

			var comment string
			if info.HasComment {
				c, err := s.GetComment(info.Base, info.Version)
				if err != nil {
					return err
				}
				comment = c
			}

			marker := " "
			if info.HasTag {
				marker = SuccessStyle.Render("*")
			}
			fmt.Fprintf(w, "\t%s %d - %s\n", marker, info.Version, comment)

			if info.HasTag {
				tag, err := s.GetTag(info.Base, info.Version)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "\t\t%s\n", WarningStyle.Render(tag))
			}
		}
	}
	return nil
}
