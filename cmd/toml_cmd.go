package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/dzjyyds666/tomlkit/pkg"
	"github.com/dzjyyds666/tomlkit/toml"
	"github.com/spf13/cobra"
)

type TomlParams struct {
	Find   string `json:"find"`   // 查找的key
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
}

var params *TomlParams

var tomlCmd = &cobra.Command{
	Use:   "toml",
	Short: "toml parse/build tools",
}

var tomlParseCmd = &cobra.Command{
	Use:   "parse",
	Short: "parse a TOML file and print its tree (or a single key)",
	Run:   tomlParseRun,
}

var tomlBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "build a small demonstration TOML document",
	Run:   tomlBuildRun,
}

func init() {
	params = &TomlParams{}
	tomlParseCmd.Flags().StringVarP(&params.Find, "find", "f", "", "dotted key to look up instead of printing the whole tree")
	tomlParseCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	tomlBuildCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path (stdout if omitted)")

	tomlCmd.AddCommand(tomlParseCmd)
	tomlCmd.AddCommand(tomlBuildCmd)
}

func tomlParseRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	root, err := toml.ParseFile(params.Input, false)
	if err != nil {
		fmt.Println("parse error:", err)
		return
	}
	if root == nil {
		fmt.Println("(empty document)")
		return
	}

	if params.Find != "" {
		path := strings.Split(params.Find, ".")
		v, ok := toml.Get(root, path...)
		if !ok {
			fmt.Printf("key %q not found\n", params.Find)
			return
		}
		fmt.Println(toml.ToUntyped(v))
		return
	}

	fmt.Print(toml.Dump(root))
}

// tomlBuildRun drives Builder through a short fixed sequence of calls — a
// table, two values, and a nested array-of-tables — purely to give the CLI
// layer something to exercise the builder with. It is not a templating
// engine.
func tomlBuildRun(cmd *cobra.Command, args []string) {
	b := toml.NewBuilder(4)
	b.AddTable("package")
	b.AddValue("name", "tomlkit", "")
	b.AddValue("version", "0.4.0", "")
	b.AddArrayOfTable("package.authors")
	b.AddValue("name", "tomlkit", "")

	out, err := b.Build()
	if err != nil {
		fmt.Println("build error:", err)
		return
	}

	if params.Output == "" {
		fmt.Print(out)
		return
	}
	if err := os.WriteFile(params.Output, []byte(out), 0o644); err != nil {
		fmt.Println("write error:", err)
	}
}
