package main

import "wtt/cmd"

func main() {
	cmd.Execute()
}
