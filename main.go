package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/matt-g-everett/easecalc/config"
	"github.com/matt-g-everett/easecalc/logger"
)

type app struct {
	Config config.Config
	In     io.Reader
	Out    io.Writer
}

var cli struct {
	Version kong.VersionFlag
	Config  string `help:"YAML config file." type:"path"`
	Debug   bool   `help:"Log at debug level."`

	Repl   ReplCmd   `cmd:"" help:"Enter curve details, then evaluate times interactively." default:"1"`
	Eval   EvalCmd   `cmd:"" help:"Evaluate a curve at the given times."`
	Table  TableCmd  `cmd:"" help:"Print the curve sampled at evenly spaced times."`
	Stream StreamCmd `cmd:"" help:"Play a curve on an LED strip over MQTT."`
	Serve  ServeCmd  `cmd:"" help:"Serve curve evaluations over HTTP."`
}

func (a *app) readConfig(configPath string) error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	a.Config = c
	return nil
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("easecalc"),
		kong.Description("Evaluate Linear, InQuad, OutQuad and InOutQuad easing curves."),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.2.0"},
	)

	a := &app{In: os.Stdin, Out: os.Stdout}
	ctx.FatalIfErrorf(a.readConfig(cli.Config))
	ctx.FatalIfErrorf(logger.Init(logger.Config{
		Level: a.Config.Log.Level,
		File:  a.Config.Log.File,
		Debug: cli.Debug,
	}))
	logger.Debug("config loaded", "path", cli.Config, "mqtt", a.Config.Mqtt.Enabled())

	ctx.FatalIfErrorf(ctx.Run(a))
}
