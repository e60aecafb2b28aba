package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"pkt.systems/psi"
	"pkt.systems/pslog"
)

// logFileName is where logs go while the TUI owns the terminal
const logFileName = "swipepager.log"

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	out, closeLog := openLog()
	defer closeLog()

	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(out),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeStructured}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)
	log.SetOutput(pslog.LogLogger(logger).Writer())
	log.SetFlags(0)

	root := newRootCmd()
	root.SetArgs(os.Args[1:])

	if err := root.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).With("err", err).Error("swipepager failed")
		fmt.Fprintf(os.Stderr, "swipepager: %v\n", err)
		return 1
	}
	return 0
}

func openLog() (*os.File, func()) {
	f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return os.Stderr, func() {}
	}
	return f, func() { _ = f.Close() }
}
