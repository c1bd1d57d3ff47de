package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/jsonpath"
	"github.com/jsonlens/jsonlens/internal/jsontext"
	"github.com/jsonlens/jsonlens/internal/session"
)

// SetCmd returns the `jsonlens set` command. The value argument is parsed
// as JSON; anything unparsable is stored as a string, matching the editor.
// Unlike the editor, a missing final key is inserted rather than rejected.
func SetCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "set <file> <path> <value>",
		Short: "Set the value at a path, preserving formatting",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), verbose)

			f, err := document.Load(args[0])
			if err != nil {
				return err
			}
			path, err := jsonpath.Parse(args[1])
			if err != nil {
				return err
			}
			value := session.ParseDraft(args[2])
			logger.Debug("applying edit", "path", path.String(), "value", value)

			updated, err := jsontext.UpsertPathEdit(f.Store.Text(), path, value)
			if err != nil {
				return err
			}
			f.Store.Replace(updated)
			if err := f.Write(); err != nil {
				return err
			}
			logger.Info("updated", "file", f.Path, "path", path.String())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
