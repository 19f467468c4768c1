package main

import "timelog/cmd"

func main() {
	cmd.Execute()
}
