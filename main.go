package main

import (
	"github.com/soravia/notedense/cmd"
)

func main() {
	cmd.Execute()
}
