package main

import "github.com/avdeyev/ranobe-hub/cli"

func main() {
	cli.Execute()
}
