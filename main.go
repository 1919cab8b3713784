package main

import "github.com/x402-Systems/pantry/cmd"

func main() {
	cmd.Execute()
}
