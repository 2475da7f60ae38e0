package main

import "github.com/floork/mensa-cli-backend/cmd"

func main() {
	cmd.Execute()
}
