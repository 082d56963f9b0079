package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"

	"github.com/a2y-d5l/linefind/internal/config"
	"github.com/a2y-d5l/linefind/internal/ctxlog"
	"github.com/a2y-d5l/linefind/internal/search"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	errLog := log.New(stderr, "linefind: ", 0)

	cfg, err := config.ParseArgs(args, stdout)
	if err != nil {
		if errors.Is(err, config.ErrHelp) {
			return 0
		}
		// Bad arguments: nothing has been read yet.
		errLog.Printf("problem parsing arguments: %v", err)
		return 1
	}

	ctx := ctxlog.WithLogger(context.Background(), ctxlog.New(stderr, cfg.Verbose))
	if err := search.Run(ctx, stdout, cfg); err != nil {
		errLog.Print(err)
		return 1
	}
	return 0
}
