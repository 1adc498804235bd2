// Package console runs the interactive curve session: one curve details line,
// then any number of time queries.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/matt-g-everett/easecalc/curve"
	"github.com/matt-g-everett/easecalc/input"
	"github.com/matt-g-everett/easecalc/logger"
)

// A Recorder receives every successful evaluation.
type Recorder interface {
	Record(c curve.Config, p curve.Point) error
}

// Session reads from in and writes prompts, echoes and results to out.
type Session struct {
	in       *bufio.Reader
	out      io.Writer
	recorder Recorder
}

// NewSession creates an instance of a Session. recorder may be nil.
func NewSession(in io.Reader, out io.Writer, recorder Recorder) *Session {
	s := new(Session)
	s.in = bufio.NewReader(in)
	s.out = out
	s.recorder = recorder
	return s
}

// Run prompts for the curve details and then answers time queries until the
// input ends. Running out of input is a normal exit and returns nil.
func (s *Session) Run() error {
	fmt.Fprintf(s.out, "Please enter Easing Curve details, in the following format:\n%s\n\n", input.Hint)

	c, err := s.readCurve()
	if err != nil {
		return ignoreEOF(err)
	}
	logger.Info("curve accepted", "curve", c)

	for {
		t, err := s.readTime(c)
		if err != nil {
			return ignoreEOF(err)
		}

		p := curve.Point{Time: t, Value: c.Evaluate(t)}
		logger.Debug("evaluated", "time", p.Time, "value", p.Value)
		fmt.Fprintln(s.out, p.Value)

		if s.recorder != nil {
			if err := s.recorder.Record(c, p); err != nil {
				logger.Warn("recording result failed", "err", err)
			}
		}
	}
}

func (s *Session) readCurve() (curve.Config, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return curve.Config{}, err
		}

		c, err := input.ParseLine(line)
		if err != nil {
			logger.Debug("rejected curve details", "line", line, "err", err)
			fmt.Fprintf(s.out, "Invalid curve details, %v. Please try again:\n", err)
			continue
		}

		fmt.Fprintln(s.out, line)
		return c, nil
	}
}

func (s *Session) readTime(c curve.Config) (float64, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}

		t, err := input.ParseTime(line, c)
		if err != nil {
			logger.Debug("rejected time", "line", line, "err", err)
			fmt.Fprintf(s.out, "Invalid %v\n", err)
			continue
		}

		return t, nil
	}
}

// readLine returns the next line without its line ending. Lines of any length
// are accepted; a final line with no newline is still returned.
func (s *Session) readLine() (string, error) {
	line, err := s.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
