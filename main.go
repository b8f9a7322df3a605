package main

import "github.com/emrgen/dispatch/cmd"

func main() {
	cmd.Execute()
}
