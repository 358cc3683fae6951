package main

import "github.com/tixmd/tixmd/cmd"

func main() {
	cmd.Execute()
}
