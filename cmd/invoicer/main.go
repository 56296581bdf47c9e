// Package main runs the invoicer CLI for customer management, timesheet
// import, and invoice document generation.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	invoicercmd "github.com/louisbranch/invoicer/internal/cmd/invoicer"
	"github.com/louisbranch/invoicer/internal/platform/config"
)

func main() {
	log.SetPrefix("[INVOICER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root, err := invoicercmd.New(os.Stdout)
	if err != nil {
		config.Exitf("invoicer: %v", err)
	}
	if err := root.ExecuteContext(ctx); err != nil {
		config.Exitf("invoicer: %v", err)
	}
}
