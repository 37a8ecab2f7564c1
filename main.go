package main

import "github.com/SamirAliWebDev/Todo/cmd"

func main() {
	cmd.Execute()
}
