package main

import "github.com/tabshield/tabshield-cli/cmd"

func main() {
	cmd.Execute()
}
