package main

import "github.com/iamagencia/crmdash/cmd"

func main() {
	cmd.Execute()
}
