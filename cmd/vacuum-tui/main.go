package main

import (
	"flag"
	"fmt"
	"os"

	"vacuum/internal/app"
	"vacuum/internal/tui"
)

func main() {
	configPath := flag.String("config", "", "Path to JSON config file")
	flag.Parse()

	controller := app.New(app.Options{ConfigPath: *configPath})
	if err := tui.Run(controller); err != nil {
		fmt.Fprintf(os.Stderr, "tui exited with error: %v\n", err)
		os.Exit(1)
	}
}
