package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

// DefaultDeviceHost is the controller's static address on the lab network.
const DefaultDeviceHost = "172.31.105.241"

var Flags = []cli.Flag{
	FlagLogLevel,
	FlagLogWriter,
	FlagDeviceHost,
	FlagDevicePort,
	FlagHTTPTimeout,
	FlagPollInterval,
}

var logger zerolog.Logger

func newApp() *cli.App {
	app := cli.App{
		Name:    "solenoidctl",
		Usage:   "remote control for the irrigation solenoid controller",
		Version: "v0.1.0",
		Flags:   Flags,
		Before: func(ctx *cli.Context) error {
			var logWriter io.Writer
			if ctx.String(FlagLogWriter.Name) == "console" {
				logWriter = zerolog.ConsoleWriter{
					Out:        os.Stderr,
					TimeFormat: time.RFC3339Nano,
				}
			} else if ctx.String(FlagLogWriter.Name) == "json" {
				logWriter = os.Stderr
			}

			logger = zerolog.New(logWriter).With().Timestamp().
				Str("service", "solenoidctl").
				Str("module", "main").
				Logger()

			level, err := zerolog.ParseLevel(ctx.String(FlagLogLevel.Name))
			if err != nil {
				return err
			}

			zerolog.SetGlobalLevel(level)

			return nil
		},
		Commands: Commands,
		Action: func(ctx *cli.Context) error {
			if ctx.Args().Present() {
				return cli.Exit(fmt.Sprintf("unknown command %q\nrun 'solenoidctl --help' for usage", ctx.Args().First()), 2)
			}
			_ = cli.ShowAppHelp(ctx)
			return cli.Exit("no command given", 2)
		},
	}

	return &app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// signalContext cancels on SIGINT/SIGTERM so the monitor loop exits
// cleanly without sending a further request.
func signalContext(parent context.Context, log zerolog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(log.WithContext(parent))

	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

		<-c

		log.Warn().Msg("interrupt signal received")
		cancel()
	}()

	return ctx, cancel
}
