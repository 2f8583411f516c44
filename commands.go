package main

import (
	"context"
	"fmt"
	"strconv"

	"solenoidctl/adapters"
	"solenoidctl/application"

	"github.com/urfave/cli/v2"
)

var Commands = []*cli.Command{
	{
		Name:   "open",
		Usage:  "open the solenoid indefinitely",
		Action: cmdToggle(true),
	},
	{
		Name:   "close",
		Usage:  "close the solenoid",
		Action: cmdToggle(false),
	},
	{
		Name:      "timed",
		Usage:     "open the solenoid, auto-closing after the given duration",
		ArgsUsage: "<seconds>",
		Action:    cmdTimed,
	},
	{
		Name:   "state",
		Usage:  "show the current solenoid state",
		Action: cmdState,
	},
	{
		Name:      "set_thresholds",
		Usage:     "set the auto-irrigation moisture thresholds",
		ArgsUsage: "<min> <max>",
		Action:    cmdSetThresholds,
	},
	{
		Name:      "auto_irrigation",
		Usage:     "set thresholds, enable auto mode and monitor moisture",
		ArgsUsage: "<min> <max>",
		Action:    cmdAutoIrrigation,
	},
	{
		Name:   "auto_on",
		Usage:  "enable auto irrigation with the device's configured thresholds and monitor moisture",
		Action: cmdAutoOn,
	},
	{
		Name:   "auto_off",
		Usage:  "disable auto irrigation",
		Action: cmdAutoOff,
	},
	{
		Name:   "status",
		Usage:  "show the complete controller status",
		Action: cmdStatus,
	},
	{
		Name:   "moisture_check",
		Usage:  "show the latest moisture reading",
		Action: cmdMoistureCheck,
	},
}

func deviceFromFlags(cCtx *cli.Context) (application.DeviceClient, error) {
	return adapters.NewSolenoidClient(adapters.SolenoidClientParams{
		Host:    cCtx.String(FlagDeviceHost.Name),
		Port:    cCtx.Int(FlagDevicePort.Name),
		Timeout: cCtx.Duration(FlagHTTPTimeout.Name),
		Log:     logger.With().Str("module", "solenoid-client").Logger(),
	})
}

func requireNoArgs(cCtx *cli.Context) error {
	if cCtx.Args().Present() {
		return cli.Exit(fmt.Sprintf("too many arguments\nusage: solenoidctl %s", cCtx.Command.Name), 2)
	}
	return nil
}

// thresholdArgs validates min/max locally; no request is made for bad input.
func thresholdArgs(cCtx *cli.Context) (application.Thresholds, error) {
	args := cCtx.Args()
	if args.Len() != 2 {
		return application.Thresholds{}, cli.Exit(fmt.Sprintf("usage: solenoidctl %s <min> <max>", cCtx.Command.Name), 2)
	}

	min, err := strconv.ParseFloat(args.Get(0), 64)
	if err != nil {
		return application.Thresholds{}, cli.Exit(fmt.Sprintf("min threshold %q is not numeric", args.Get(0)), 2)
	}
	max, err := strconv.ParseFloat(args.Get(1), 64)
	if err != nil {
		return application.Thresholds{}, cli.Exit(fmt.Sprintf("max threshold %q is not numeric", args.Get(1)), 2)
	}

	t := application.Thresholds{Min: min, Max: max}
	if err := t.Validate(); err != nil {
		return application.Thresholds{}, cli.Exit(err.Error(), 2)
	}
	return t, nil
}

func runMonitor(ctx context.Context, cCtx *cli.Context, device application.DeviceClient) error {
	monitor, err := application.NewMonitorService(application.MonitorServiceParams{
		Device:   device,
		Interval: cCtx.Duration(FlagPollInterval.Name),
		Out:      cCtx.App.Writer,
		Log:      logger.With().Str("module", "monitor").Logger(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cCtx.App.Writer, "Monitoring moisture. Press Ctrl+C to stop.")
	return monitor.Run(ctx)
}

func cmdToggle(open bool) cli.ActionFunc {
	return func(cCtx *cli.Context) error {
		if err := requireNoArgs(cCtx); err != nil {
			return err
		}
		device, err := deviceFromFlags(cCtx)
		if err != nil {
			return err
		}

		ctx, cancel := signalContext(context.Background(), logger)
		defer cancel()

		var resp string
		if open {
			resp, err = device.Open(ctx)
		} else {
			resp, err = device.Close(ctx)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cCtx.App.Writer, "Triggering solenoid")
		fmt.Fprintf(cCtx.App.Writer, "Response: %s\n", resp)
		return nil
	}
}

func cmdTimed(cCtx *cli.Context) error {
	args := cCtx.Args()
	if args.Len() != 1 {
		return cli.Exit("usage: solenoidctl timed <seconds>", 2)
	}
	seconds, err := strconv.Atoi(args.Get(0))
	if err != nil || seconds <= 0 {
		return cli.Exit(fmt.Sprintf("duration %q must be a positive number of seconds", args.Get(0)), 2)
	}

	device, err := deviceFromFlags(cCtx)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	resp, err := device.OpenTimed(ctx, seconds)
	if err != nil {
		return err
	}

	fmt.Fprintf(cCtx.App.Writer, "Opening solenoid for %d seconds\n", seconds)
	fmt.Fprintf(cCtx.App.Writer, "Response: %s\n", resp)
	return nil
}

func cmdState(cCtx *cli.Context) error {
	if err := requireNoArgs(cCtx); err != nil {
		return err
	}
	device, err := deviceFromFlags(cCtx)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	state, err := device.State(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cCtx.App.Writer, "Current state: %s\n", state)
	return nil
}

func cmdSetThresholds(cCtx *cli.Context) error {
	t, err := thresholdArgs(cCtx)
	if err != nil {
		return err
	}
	device, err := deviceFromFlags(cCtx)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	resp, err := device.SetThresholds(ctx, t)
	if err != nil {
		return err
	}

	fmt.Fprintf(cCtx.App.Writer, "Set thresholds: Min=%g%%, Max=%g%%\n", t.Min, t.Max)
	fmt.Fprintf(cCtx.App.Writer, "Response: %s\n", resp)
	return nil
}

func cmdAutoIrrigation(cCtx *cli.Context) error {
	t, err := thresholdArgs(cCtx)
	if err != nil {
		return err
	}
	device, err := deviceFromFlags(cCtx)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	resp, err := device.SetThresholds(ctx, t)
	if err != nil {
		return err
	}
	fmt.Fprintf(cCtx.App.Writer, "Set thresholds: Min=%g%%, Max=%g%%\n", t.Min, t.Max)
	fmt.Fprintf(cCtx.App.Writer, "Response: %s\n", resp)

	resp, err = device.SetAuto(ctx, true)
	if err != nil {
		return err
	}
	fmt.Fprintf(cCtx.App.Writer, "Auto irrigation enabled: moisture < %g%% opens, > %g%% closes\n", t.Min, t.Max)
	fmt.Fprintf(cCtx.App.Writer, "Response: %s\n", resp)

	return runMonitor(ctx, cCtx, device)
}

func cmdAutoOn(cCtx *cli.Context) error {
	if err := requireNoArgs(cCtx); err != nil {
		return err
	}
	device, err := deviceFromFlags(cCtx)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	resp, err := device.SetAuto(ctx, true)
	if err != nil {
		return err
	}
	fmt.Fprintln(cCtx.App.Writer, "Automatic irrigation enabled")
	fmt.Fprintf(cCtx.App.Writer, "Response: %s\n", resp)

	status, err := device.Status(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("could not fetch initial status")
	}
	fmt.Fprintln(cCtx.App.Writer, application.FormatStatusSummary(status))

	return runMonitor(ctx, cCtx, device)
}

func cmdAutoOff(cCtx *cli.Context) error {
	if err := requireNoArgs(cCtx); err != nil {
		return err
	}
	device, err := deviceFromFlags(cCtx)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	resp, err := device.SetAuto(ctx, false)
	if err != nil {
		return err
	}

	fmt.Fprintln(cCtx.App.Writer, "Automatic irrigation disabled")
	fmt.Fprintf(cCtx.App.Writer, "Response: %s\n", resp)
	return nil
}

func cmdStatus(cCtx *cli.Context) error {
	if err := requireNoArgs(cCtx); err != nil {
		return err
	}
	device, err := deviceFromFlags(cCtx)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	status, err := device.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cCtx.App.Writer, application.FormatStatus(status))
	return nil
}

func cmdMoistureCheck(cCtx *cli.Context) error {
	if err := requireNoArgs(cCtx); err != nil {
		return err
	}
	device, err := deviceFromFlags(cCtx)
	if err != nil {
		return err
	}

	ctx, cancel := signalContext(context.Background(), logger)
	defer cancel()

	status, err := device.Status(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(cCtx.App.Writer, "Current moisture: %g%%\n", status.CurrentMoisture)
	fmt.Fprintln(cCtx.App.Writer, application.FormatStatusSummary(status))
	return nil
}
