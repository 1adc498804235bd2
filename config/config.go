// Package config loads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"
)

// Topics names the MQTT topics easecalc publishes to.
type Topics struct {
	Result string `yaml:"result"`
	Stream string `yaml:"stream"`
}

// Mqtt holds broker settings. MQTT output is off while URL is empty.
type Mqtt struct {
	URL      string `yaml:"url"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	ClientID string `yaml:"clientId"`
	Topics   Topics `yaml:"topics"`
}

// Enabled reports whether a broker has been configured.
func (m Mqtt) Enabled() bool {
	return m.URL != ""
}

type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Stream controls how a curve is rendered onto an LED strip.
type Stream struct {
	Pixels    int     `yaml:"pixels"`
	FrameRate float64 `yaml:"frameRate"`
	From      string  `yaml:"from"`
	To        string  `yaml:"to"`
}

type Serve struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	Log    Log    `yaml:"log"`
	Mqtt   Mqtt   `yaml:"mqtt"`
	Stream Stream `yaml:"stream"`
	Serve  Serve  `yaml:"serve"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	var c Config
	c.Log.Level = "warn"
	c.Mqtt.ClientID = "easecalc"
	c.Mqtt.Topics.Result = "easecalc/result"
	c.Mqtt.Topics.Stream = "easecalc/stream"
	c.Stream.Pixels = 500
	c.Stream.FrameRate = 30
	c.Stream.From = "#000005"
	c.Stream.To = "#808080"
	c.Serve.Addr = ":3000"
	return c
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return c, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	if err := Decode(f, &c); err != nil {
		return c, fmt.Errorf("reading config %s: %w", path, err)
	}
	return c, nil
}

// Decode reads YAML from r into c and validates the result.
func Decode(r io.Reader, c *Config) error {
	decoder := yaml.NewDecoder(r)
	if err := decoder.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return c.Validate()
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	if c.Stream.Pixels <= 0 || c.Stream.Pixels > 0xffff {
		return fmt.Errorf("stream.pixels: must be between 1 and 65535, got %d", c.Stream.Pixels)
	}
	if c.Stream.FrameRate <= 0 {
		return fmt.Errorf("stream.frameRate: must be greater than 0, got %g", c.Stream.FrameRate)
	}
	if _, err := colorful.Hex(c.Stream.From); err != nil {
		return fmt.Errorf("stream.from: %w", err)
	}
	if _, err := colorful.Hex(c.Stream.To); err != nil {
		return fmt.Errorf("stream.to: %w", err)
	}
	return nil
}

// Colours returns the parsed start and end colours of the stream gradient.
func (s Stream) Colours() (from, to colorful.Color, err error) {
	if from, err = colorful.Hex(s.From); err != nil {
		return
	}
	to, err = colorful.Hex(s.To)
	return
}
