package main

import "github.com/kanboardtools/kanboard-mcp/cmd"

func main() {
	cmd.Execute()
}
