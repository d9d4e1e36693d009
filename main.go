package main

import "github.com/pmcli/postmortem/cmd"

func main() {
	cmd.Execute()
}
