package main

import "linecount/cmd"

func main() {
	cmd.Execute()
}
