package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matt-g-everett/easecalc/api"
	"github.com/matt-g-everett/easecalc/console"
	"github.com/matt-g-everett/easecalc/curve"
	"github.com/matt-g-everett/easecalc/input"
	"github.com/matt-g-everett/easecalc/logger"
	"github.com/matt-g-everett/easecalc/stream"
)

const disconnectQuiesceMs = 250

// ReplCmd runs the interactive curve session on stdin and stdout.
type ReplCmd struct{}

func (c *ReplCmd) Run(a *app) error {
	recorder, closeRecorder, err := a.resultRecorder()
	if err != nil {
		return err
	}
	defer closeRecorder()

	return console.NewSession(a.In, a.Out, recorder).Run()
}

// EvalCmd evaluates one curve at each time given on the command line.
type EvalCmd struct {
	Curve string   `arg:"" help:"Curve details, e.g. Linear,x_t0=100,x_tmax=200,duration=1."`
	Times []string `arg:"" name:"time" help:"Times to evaluate, between 0 and the duration."`
}

func (c *EvalCmd) Run(a *app) error {
	cfg, err := input.ParseLine(c.Curve)
	if err != nil {
		return err
	}

	recorder, closeRecorder, err := a.resultRecorder()
	if err != nil {
		return err
	}
	defer closeRecorder()

	for _, s := range c.Times {
		t, err := input.ParseTime(s, cfg)
		if err != nil {
			return err
		}

		p := curve.Point{Time: t, Value: cfg.Evaluate(t)}
		fmt.Fprintln(a.Out, p.Value)
		if recorder != nil {
			if err := recorder.Record(cfg, p); err != nil {
				logger.Warn("recording result failed", "err", err)
			}
		}
	}
	return nil
}

// TableCmd prints a curve sampled at evenly spaced times.
type TableCmd struct {
	Curve string `arg:"" help:"Curve details, e.g. Linear,x_t0=100,x_tmax=200,duration=1."`
	Steps int    `help:"Number of intervals between 0 and the duration." default:"10"`
}

func (c *TableCmd) Run(a *app) error {
	cfg, err := input.ParseLine(c.Curve)
	if err != nil {
		return err
	}

	for _, p := range cfg.Sample(c.Steps) {
		fmt.Fprintf(a.Out, "%g\t%d\n", p.Time, p.Value)
	}
	return nil
}

// StreamCmd plays a curve in real time as LED frames over MQTT.
type StreamCmd struct {
	Curve string `arg:"" help:"Curve details; the duration is in seconds."`
}

func (c *StreamCmd) Run(a *app) error {
	cfg, err := input.ParseLine(c.Curve)
	if err != nil {
		return err
	}
	if !a.Config.Mqtt.Enabled() {
		return errors.New("streaming needs mqtt.url in the config file")
	}

	from, to, err := a.Config.Stream.Colours()
	if err != nil {
		return err
	}

	client, err := stream.NewClient(a.Config.Mqtt)
	if err != nil {
		return err
	}
	defer client.Disconnect(disconnectQuiesceMs)

	animation := stream.NewLevelAnimation(cfg, a.Config.Stream.Pixels, from, to)
	streamer := stream.NewStreamer(client, a.Config.Mqtt.Topics.Stream, animation, a.Config.Stream.FrameRate)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("streaming", "curve", cfg, "topic", a.Config.Mqtt.Topics.Stream)
	if err := streamer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// ServeCmd serves curve evaluations over HTTP until interrupted.
type ServeCmd struct {
	Addr string `help:"Listen address, overriding serve.addr."`
}

func (c *ServeCmd) Run(a *app) error {
	addr := a.Config.Serve.Addr
	if c.Addr != "" {
		addr = c.Addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return api.NewApi().Serve(ctx, addr)
}

// resultRecorder connects to the broker when MQTT is configured. The returned
// recorder is nil otherwise.
func (a *app) resultRecorder() (console.Recorder, func(), error) {
	m := a.Config.Mqtt
	if !m.Enabled() || m.Topics.Result == "" {
		return nil, func() {}, nil
	}

	client, err := stream.NewClient(m)
	if err != nil {
		return nil, nil, err
	}

	closeFn := func() { client.Disconnect(disconnectQuiesceMs) }
	return stream.NewResultPublisher(client, m.Topics.Result), closeFn, nil
}
