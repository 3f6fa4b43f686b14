package driver

import (
	"context"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/vadiminshakov/factloop/math"
	"github.com/vadiminshakov/factloop/pkg/retry"
)

// Program describes one run: a greeting line followed by Iterations lines
// holding math.Factorial(Input).
type Program struct {
	Greeting   string
	Input      int32
	Iterations int
}

var (
	// Default is what the binary runs.
	Default = Program{Greeting: "Hello", Input: 20, Iterations: 10000}

	// Kotlin is the shorter companion run of 2000 iterations.
	Kotlin = Program{Greeting: "Hello", Input: 20, Iterations: 2000}
)

// Lines returns how many lines Run writes for p.
func Lines(p Program) int {
	return p.Iterations + 1
}

// Run writes p to w one line at a time. The factorial is recomputed on
// every iteration.
func Run(ctx context.Context, w io.Writer, p Program) error {
	if err := retry.Write(ctx, w, []byte(p.Greeting+"\n")); err != nil {
		return errors.Wrap(err, "failed to write greeting")
	}

	buf := make([]byte, 0, 16)
	for i := 0; i < p.Iterations; i++ {
		buf = strconv.AppendInt(buf[:0], int64(math.Factorial(p.Input)), 10)
		buf = append(buf, '\n')

		if err := retry.Write(ctx, w, buf); err != nil {
			return errors.Wrapf(err, "failed to write line %d", i+2)
		}
	}

	return nil
}
