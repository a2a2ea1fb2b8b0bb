package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/pharbuild/internal/core/domain"
	"go.trai.ch/pharbuild/internal/ui/style"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compile [version]",
		Short: "Build the phar for a tag, or for the latest tag when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.BuildRequest{}
			if len(args) == 1 {
				req.Version = args[0]
			}
			req.IncludeExtensions, _ = cmd.Flags().GetBool("extensions")
			req.RepositoryURL, _ = cmd.Flags().GetString("repository")
			req.ConfigPath, _ = cmd.Flags().GetString("config")

			res, err := c.app.Compile(cmd.Context(), req)
			if err != nil {
				return err
			}

			check := lipgloss.NewStyle().Foreground(style.Green).Render(style.Check)
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "%s %s\n", check, res.Archive)
			_, _ = fmt.Fprintf(out, "  %s %s (%s)\n",
				style.Label.Render("revision"), res.Revision.Ref, res.Revision.ShortHash())
			_, _ = fmt.Fprintf(out, "  %s %d\n",
				style.Label.Render("dependencies"), res.Dependencies.Len())
			return nil
		},
	}
	cmd.Flags().BoolP("extensions", "e", false, "Bundle the registered extension packages")
	cmd.Flags().String("repository", "", "Override the source repository URL")
	return cmd
}
