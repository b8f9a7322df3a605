package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dispatch",
	Short: "dispatch order correspondence tool",
	Example: `dispatch order show -d <order-id>
dispatch link add-doc -d <order-id> -c <doc-id>
dispatch link remove-doc -d <order-id> -l <link-id>
dispatch match propose -d <order-id> -p <project-name>
dispatch match confirm -d <order-id> -p <project-name>
dispatch audit`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(dbCmd)
	rootCmd.SetHelpCommand(&cobra.Command{Use: "no-help", Hidden: true})

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	cobra.EnableCommandSorting = false
}
