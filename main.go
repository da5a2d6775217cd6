package main

import "upsolve-tracker/cmd"

func main() {
	cmd.Execute()
}
