package commands

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/ui/style"
)

func (c *CLI) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [version]",
		Short: "Show recorded builds",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var version string
			if len(args) == 1 {
				version = args[0]
			}

			records, err := c.app.Records(version)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no builds recorded")
				return nil
			}

			for i, r := range records {
				if i > 0 {
					_, _ = fmt.Fprintln(cmd.OutOrStdout())
				}
				renderRecord(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

func renderRecord(w io.Writer, r domain.BuildRecord) {
	_, _ = fmt.Fprintln(w, style.Heading.Render(style.Dot+" "+r.Version))

	row := func(label, value string) {
		if value == "" {
			return
		}
		_, _ = fmt.Fprintf(w, "  %s %s\n", style.Label.Render(label), value)
	}
	row("commit", r.CommitHash)
	if !r.CommitDate.IsZero() {
		row("date", r.CommitDate.Format(time.RFC3339))
	}
	row("repository", r.Repository)
	row("extensions", strconv.FormatBool(r.Extensions))
	row("archive", r.Archive)
	row("archive hash", r.ArchiveHash)
	row("tree hash", r.TreeHash)
	row("dependencies", strconv.Itoa(len(r.Dependencies)))
}
