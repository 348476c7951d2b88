package main

import "home-goal/cmd"

func main() {
	cmd.Execute()
}
