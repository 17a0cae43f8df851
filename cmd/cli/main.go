package main

import "moviereview/cmd/cli/command"

func main() {
	command.Execute()
}
