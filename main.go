package main

import "github.com/typmgr/fontctl/cmd"

func main() {
	cmd.Execute()
}
