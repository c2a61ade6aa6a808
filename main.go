package main

import "github.com/hunterjsb/askbot/cmd"

func main() {
	cmd.Execute()
}
