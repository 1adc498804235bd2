package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/eclipse/paho.mqtt.golang"
)

const publishTimeout = 5 * time.Second

// Publisher is the part of mqtt.Client used for sending messages.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// Streamer that streams RGB data frames to an LED strip over MQTT.
type Streamer struct {
	client    Publisher
	topic     string
	animation Animation
	interval  time.Duration
}

// NewStreamer creates an instance of a Streamer publishing frameRate frames
// per second to topic.
func NewStreamer(client Publisher, topic string, animation Animation, frameRate float64) *Streamer {
	s := new(Streamer)
	s.client = client
	s.topic = topic
	s.animation = animation
	s.interval = time.Duration(float64(time.Second) / frameRate)
	if s.interval <= 0 {
		s.interval = time.Millisecond
	}
	return s
}

// SendFrame sends the frame for elapsed as binary over MQTT.
func (s *Streamer) SendFrame(elapsed time.Duration) error {
	f := s.animation.CalculateFrame(elapsed)
	b, err := f.MarshalBinary()
	if err != nil {
		return err
	}
	return wait(s.client.Publish(s.topic, 0, false, b))
}

// Run sends frames until the animation has played to its end or ctx is
// cancelled. The last frame sent is always the final state of the animation.
func (s *Streamer) Run(ctx context.Context) error {
	start := time.Now()
	publishTimer := time.NewTicker(s.interval)
	defer publishTimer.Stop()

	for {
		elapsed := time.Since(start)
		done := elapsed >= s.animation.Length()
		if err := s.SendFrame(elapsed); err != nil {
			return fmt.Errorf("sending frame: %w", err)
		}
		if done {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-publishTimer.C:
		}
	}
}

func wait(token mqtt.Token) error {
	if !token.WaitTimeout(publishTimeout) {
		return fmt.Errorf("publish timed out after %v", publishTimeout)
	}
	return token.Error()
}
