package main

import "github.com/aosmicepp/platform/cmd"

func main() {
	cmd.Execute()
}
