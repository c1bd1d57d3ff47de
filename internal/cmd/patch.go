package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	jsonpatch "github.com/evanphx/json-patch/v5"
	"github.com/spf13/cobra"

	"github.com/jsonlens/jsonlens/internal/document"
	"github.com/jsonlens/jsonlens/internal/jsontext"
)

// PatchCmd returns the `jsonlens patch` command: applies an RFC 6902 patch
// file. Unlike set, this rewrites the whole document (2-space indent), so
// comments and hand formatting do not survive.
func PatchCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "patch <file> <patch.json>",
		Short: "Apply an RFC 6902 JSON patch",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd.ErrOrStderr(), verbose)

			f, err := document.Load(args[0])
			if err != nil {
				return err
			}
			pb, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read patch: %w", err)
			}
			patch, err := jsonpatch.DecodePatch(pb)
			if err != nil {
				return fmt.Errorf("decode patch: %w", err)
			}
			logger.Debug("applying patch", "ops", len(patch))

			applied, err := patch.Apply(jsontext.Standardize([]byte(f.Store.Text())))
			if err != nil {
				return fmt.Errorf("apply patch: %w", err)
			}
			var v any
			if err := json.Unmarshal(applied, &v); err != nil {
				return fmt.Errorf("reformat: %w", err)
			}
			out, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("reformat: %w", err)
			}

			f.Store.Replace(string(out) + "\n")
			if err := f.Write(); err != nil {
				return err
			}
			logger.Info("patched", "file", f.Path, "ops", len(patch))
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}
