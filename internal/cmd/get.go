package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/jsonpath"
	"github.com/jsonlens/jsonlens/internal/jsontext"
)

// GetCmd returns the `jsonlens get` command.
func GetCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "get <file> <path>",
		Short: "Print the value at a path",
		Args:  cobra.ExactArgs(2),
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
			logger.Debug("resolving", "path", path.String())

			v, err := jsontext.Value([]byte(f.Store.Text()), path)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("encode value: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
