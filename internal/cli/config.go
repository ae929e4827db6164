package cli

import (
	"fmt"

	"github.com/speier/gotex/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Get or set the CLI's persisted default flags",
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one default: output, strict, or macros",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		switch args[0] {
		case "output":
			fmt.Println(cfg.Output)
		case "strict":
			fmt.Println(cfg.Strict)
		case "macros":
			fmt.Println(cfg.Macros)
		default:
			return fmt.Errorf("unknown config key: %s", args[0])
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist one default: output, strict, or macros",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		switch args[0] {
		case "output":
			cfg.Output = args[1]
		case "strict":
			cfg.Strict = args[1]
		case "macros":
			cfg.Macros = args[1]
		default:
			return fmt.Errorf("unknown config key: %s", args[0])
		}
		return cfg.Save()
	},
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
}
