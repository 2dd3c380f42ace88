package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/hexrail/pkg/errors"
	hexio "github.com/matzehuels/hexrail/pkg/io"
)

// fixtureCommand creates the fixture command, which prints the reference
// track as a toggle script.
func (c *CLI) fixtureCommand() *cobra.Command {
	var output, format string

	cmd := &cobra.Command{
		Use:   "fixture",
		Short: "Write the reference track as a toggle script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := hexio.Format(format)
			if output != "" && !cmd.Flags().Changed("format") {
				var err error
				if f, err = hexio.FormatFromPath(output); err != nil {
					return err
				}
			}
			if err := errors.ValidateFormats([]string{string(f)}, string(hexio.FormatTOML), string(hexio.FormatYAML), string(hexio.FormatJSON)); err != nil {
				return err
			}

			out, err := openOutput(output)
			if err != nil {
				return err
			}
			defer out.Close()

			if err := hexio.WriteScript(out, hexio.Reference(), f); err != nil {
				return err
			}
			if output != "" {
				printFile(output)
				printNextStep("Render it", appName+" render "+output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&format, "format", "f", string(hexio.FormatTOML), "script format: toml, yaml, json")

	return cmd
}
