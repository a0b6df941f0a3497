package main

import "github.com/nathanhack/eccsim/cmd"

func main() {
	cmd.Execute()
}
