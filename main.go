package main

import "lakeview/cmd"

func main() {
	cmd.Execute()
}
