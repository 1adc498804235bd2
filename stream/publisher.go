package stream

import (
	"encoding/json"

	"github.com/matt-g-everett/easecalc/curve"
)

// ResultMessage is the JSON body published for each evaluation.
type ResultMessage struct {
	Curve    string  `json:"curve"`
	Lower    int     `json:"lower"`
	Upper    int     `json:"upper"`
	Duration float64 `json:"duration"`
	Time     float64 `json:"time"`
	Value    int     `json:"value"`
}

// ResultPublisher publishes evaluation results to an MQTT topic.
type ResultPublisher struct {
	client Publisher
	topic  string
}

// NewResultPublisher creates an instance of a ResultPublisher.
func NewResultPublisher(client Publisher, topic string) *ResultPublisher {
	p := new(ResultPublisher)
	p.client = client
	p.topic = topic
	return p
}

// Record publishes a single result and waits for the broker to accept it.
func (p *ResultPublisher) Record(c curve.Config, pt curve.Point) error {
	b, err := json.Marshal(ResultMessage{
		Curve:    c.Kind.String(),
		Lower:    c.Lower,
		Upper:    c.Upper,
		Duration: c.Duration,
		Time:     pt.Time,
		Value:    pt.Value,
	})
	if err != nil {
		return err
	}
	return wait(p.client.Publish(p.topic, 1, false, b))
}
