package main

import "github.com/mcoot/soccermanager/internal/cli"

func main() {
	cli.Execute()
}
