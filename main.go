/*
meshview is an interactive STL triage viewer: it renders each mesh of a
configured queue and sorts it into a W/A/S/D bucket on key press.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/meshview/meshview/engine"
	"github.com/meshview/meshview/engine/config"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to the TOML configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	app := engine.New(cfg)

	if err := app.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		app.RequestShutdown()
	}()

	if err := app.Run(); err != nil {
		panic(err)
	}
}
