package main

import "github.com/douhashi/issue-transfer/cmd"

func main() {
	cmd.Execute()
}
