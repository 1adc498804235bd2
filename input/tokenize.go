// Package input turns console text into validated curve parameters.
package input

import (
	"strings"

	"github.com/matt-g-everett/easecalc/curve"
)

// Hint shows the expected format of a curve details line.
const Hint = "Linear,x_t0=100,x_tmax=200,duration=1"

// Tokenize splits a curve details line such as
// "Linear,x_t0=100,x_tmax=200,duration=1" into raw fields. The first field is
// kept verbatim; every later field keeps only the text after its first "=",
// or becomes empty if it has none. No other checks are made here.
func Tokenize(line string) []string {
	entries := strings.Split(line, ",")

	fields := make([]string, 0, len(entries))
	fields = append(fields, entries[0])
	for _, entry := range entries[1:] {
		_, value, _ := strings.Cut(entry, "=")
		fields = append(fields, value)
	}

	return fields
}

// ParseLine tokenizes and validates a curve details line.
func ParseLine(line string) (curve.Config, error) {
	return Validate(Tokenize(strings.TrimRight(line, "\r\n")))
}
