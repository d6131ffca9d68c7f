package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tomlkit",
	Short: "tomlkit is a TOML v0.4.0 parsing and building tool.",
	Long:  "tomlkit is a command-line front-end over the toml package: it parses TOML files into a typed tree and can drive the Builder to emit TOML text.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of tomlkit",
	Long:  `All software has versions. This is tomlkit's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tomlkit v0.1 -- HEAD")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(tomlCmd)
}
