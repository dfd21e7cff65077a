package main

import "boardsnap/cmd/boardsnap/cmd"

func main() {
	cmd.Execute()
}
