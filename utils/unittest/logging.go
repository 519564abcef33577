package unittest

import (
	"flag"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var verbose = flag.Bool("vv", false, "print debugging logs")

// Logger returns a zerolog
// use -vv flag to print debugging logs for tests
func Logger() zerolog.Logger {
	writer := io.Discard

	if *verbose {
		writer = os.Stderr
	}
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(writer).Level(zerolog.DebugLevel).With().Timestamp().Logger()
	return log
}

// HookedLogger returns a logger whose entries are also passed to the given hook,
// so tests can assert on what was logged.
func HookedLogger(hook zerolog.Hook) zerolog.Logger {
	return Logger().Hook(hook)
}

// LogCounter counts log entries by level.
type LogCounter struct {
	mu     sync.Mutex
	counts map[zerolog.Level]int
}

func NewLogCounter() *LogCounter {
	return &LogCounter{counts: make(map[zerolog.Level]int)}
}

func (c *LogCounter) Run(_ *zerolog.Event, level zerolog.Level, _ string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts[level]++
}

// Count returns the number of entries logged at the given level.
func (c *LogCounter) Count(level zerolog.Level) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[level]
}
