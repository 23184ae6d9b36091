package main

import "github.com/classpatch/classpatch/cmd"

func main() {
	cmd.Execute()
}
