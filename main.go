package main

import (
	"os"

	"github.com/tcolombari/Hub-de-Estudos-Pomodoro/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
