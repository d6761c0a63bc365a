package main

import "github.com/ga-tools/analytics-mcp/cmd"

func main() {
	cmd.Execute()
}
