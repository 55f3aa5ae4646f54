package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	fluxcmd "github.com/fluxauth/flux/internal/cmd/flux"
)

func main() {
	cfg, err := fluxcmd.ParseConfig(flag.CommandLine, os.Args[1:], func(key string) (string, bool) {
		value, ok := os.LookupEnv(key)
		return value, ok
	})
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[FLUX] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := fluxcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
