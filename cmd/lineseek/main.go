package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"golang.org/x/crypto/ssh/terminal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	cmd := newRootCmd(terminalIO{
		stdin:            os.Stdin,
		stdout:           os.Stdout,
		stdinIsTerminal:  terminal.IsTerminal(int(os.Stdin.Fd())),
		stdoutIsTerminal: terminal.IsTerminal(int(os.Stdout.Fd())),
	})
	err := cmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
