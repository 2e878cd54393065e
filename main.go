package main

import "poc-availability/cmd"

func main() {
	cmd.Execute()
}
