package main

import "github.com/linesmerrill/hospital-api/cmd"

func main() {
	cmd.Execute()
}
