package main

import "github.com/Digni/user-idle/cmd"

func main() {
	cmd.Execute()
}
