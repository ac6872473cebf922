package main

import "loginflow/cmd/loginctl/cmd"

func main() {
	cmd.Execute()
}
