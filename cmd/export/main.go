// Command export writes the portal as a static site.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	exportcmd "github.com/louisbranch/extracurricular-portal/internal/cmd/export"
	"github.com/louisbranch/extracurricular-portal/internal/platform/config"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		config.Exitf("export: %v", err)
	}
}

func run(args []string) error {
	cfg, err := exportcmd.ParseConfig(flag.CommandLine, args)
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return exportcmd.Run(ctx, cfg)
}
