package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"fjacquet/voice-expense/cmd/batch"
	"fjacquet/voice-expense/cmd/categorize"
	"fjacquet/voice-expense/cmd/extract"
	"fjacquet/voice-expense/cmd/root"
	"fjacquet/voice-expense/cmd/taxonomy"
	"fjacquet/voice-expense/internal/config"
)

func init() {
	// 1. Load environment variables before any configuration is read
	config.LoadEnv()

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(categorize.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(taxonomy.Cmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := root.Cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
