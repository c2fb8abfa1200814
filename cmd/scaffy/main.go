package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/OlaoluwaM/scaffy/pkg/cli"
	"github.com/OlaoluwaM/scaffy/pkg/console"
	"github.com/OlaoluwaM/scaffy/pkg/constants"
	"github.com/OlaoluwaM/scaffy/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var mainLog = logger.New("main")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	ctx, stop := cli.WithSignals(context.Background())
	defer stop()

	rootCmd := cli.NewRootCommand(version)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)
	code := cli.ExitCode(ctx, err)
	mainLog.Printf("Command finished: code=%d, err=%v", code, err)

	var sigErr *cli.SignalError
	if errors.As(context.Cause(ctx), &sigErr) {
		fmt.Fprintln(os.Stderr, console.FormatInfoMessage(constants.FarewellMessage))
		return code
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, cli.FormatValidationError(err))
	}
	return code
}
