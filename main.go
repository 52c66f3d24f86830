package main

import (
	"github.com/krishi-officer/krishicli/cmd"
)

func main() {
	cmd.Execute()
}
