package cli

import (
	"github.com/speier/gotex/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotex [command]",
	Short: "Render TeX-compatible math notation",
	Long: `gotex renders TeX-compatible math notation to an HTML box tree
and a parallel MathML tree, mirroring KaTeX's parse/build pipeline.

Use "gotex render" to typeset a source string or file, and
"gotex config" to inspect or change the CLI's persisted defaults.`,
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// SetVersion sets the version for the CLI.
func SetVersion(v string) {
	rootCmd.Version = v
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Version = version.Get()

	rootCmd.SetUsageTemplate(`Usage:
  {{.CommandPath}} [command]

Available Commands:{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}
Use "{{.CommandPath}} [command] --help" for more information about a command.
`)

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(configCmd)

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})
}
