package cli

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"rdsq/internal/output"
)

// getFormat returns the --format value from the root command's persistent flags.
func getFormat(cmd *cobra.Command) string {
	v, _ := cmd.Root().PersistentFlags().GetString("format")
	return v
}

// wantsJSON reports whether the effective format is one of the JSON formats.
// The format follows the same flag > env > profile > default order as a query
// run; when that cannot be resolved only the flag is consulted. An unparseable
// format falls back to text.
func (a *app) wantsJSON(cmd *cobra.Command) bool {
	format := getFormat(cmd)
	if a.flags != nil {
		if cfg, err := a.resolveConfig(cmd, a.flags); err == nil {
			format = cfg.Format
		}
	}
	f, err := output.ParseFormat(format)
	return err == nil && f.IsJSON()
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
