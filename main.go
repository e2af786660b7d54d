package main

import "github.com/sadopc/pomo/cmd"

func main() {
	cmd.Execute()
}
