package main

import "github.com/activityboard/activityboard/cmd"

func main() {
	cmd.Execute()
}
