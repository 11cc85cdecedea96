package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"

	"github.com/nufmt/nufmt/internal/format"
)

// debugCmd groups internals useful for diagnosing nufmt itself, not hidden
// for secrecy but because they aren't part of the normal formatting workflow.
var debugCmd = &cobra.Command{
	Use:    "debug",
	Short:  "inspect nufmt's internals",
	Hidden: true,
}

var debugTokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "dump the token vector nufmt would format",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source, err := readDebugInput(cmd, args)
		if err != nil {
			return err
		}
		out, err := format.DebugTokens(source)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out)
		return err
	},
}

var debugConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "print the config that would be used to format the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := os.Getwd()
		if err != nil {
			return err
		}
		cfg, err := resolveConfig(dir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), repr.String(cfg))
		return nil
	},
}

func readDebugInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 {
		raw, err := io.ReadAll(cmd.InOrStdin())
		return string(raw), err
	}
	raw, err := os.ReadFile(args[0])
	return string(raw), err
}

func init() {
	debugCmd.AddCommand(debugTokensCmd, debugConfigCmd)
}
