package main

import (
	"time"

	"github.com/urfave/cli/v2"
)

var FlagLogLevel = &cli.StringFlag{
	Name:     "log-level",
	EnvVars:  []string{"LOG_LEVEL"},
	Value:    "info",
	Required: false,
}

var FlagLogWriter = &cli.StringFlag{
	Name:     "log-writer",
	EnvVars:  []string{"LOG_WRITER"},
	Value:    "console",
	Required: false,
}

var FlagDeviceHost = &cli.StringFlag{
	Name:     "device-host",
	Usage:    "address of the irrigation controller",
	EnvVars:  []string{"DEVICE_HOST"},
	Value:    DefaultDeviceHost,
	Required: false,
}

var FlagDevicePort = &cli.IntFlag{
	Name:     "device-port",
	Usage:    "HTTP port of the irrigation controller",
	EnvVars:  []string{"DEVICE_PORT"},
	Value:    80,
	Required: false,
}

var FlagHTTPTimeout = &cli.DurationFlag{
	Name:     "http-timeout",
	Usage:    "per-request timeout for controller calls",
	EnvVars:  []string{"HTTP_TIMEOUT"},
	Value:    5 * time.Second,
	Required: false,
}

var FlagPollInterval = &cli.DurationFlag{
	Name:     "poll-interval",
	Usage:    "moisture poll interval while monitoring auto irrigation",
	EnvVars:  []string{"POLL_INTERVAL"},
	Value:    30 * time.Second,
	Required: false,
}
