package main

import "github.com/dzjyyds666/tomlkit/cmd"

func main() {
	cmd.Execute()
}
