package main

import "github.com/campusclubs/server/cmd/server/cmd"

func main() {
	cmd.Execute()
}
