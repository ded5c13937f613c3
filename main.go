package main

import "github.com/fargo-build/fargo/cmd"

func main() {
	cmd.Execute()
}
