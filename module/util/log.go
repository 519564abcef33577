package util

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.uber.org/atomic"
)

// LogProgressFunc adds to the progress. It can be called concurrently;
// negative values are ignored.
type LogProgressFunc func(add int)

// LogProgress returns a function which logs progress towards total, at every
// tenth of the total. An eta is logged too, assuming the progress is linear.
func LogProgress(log zerolog.Logger, message string, total int) LogProgressFunc {
	start := time.Now()
	current := atomic.NewUint64(0)

	var mu sync.Mutex
	logProgress := func(done uint64) {
		mu.Lock()
		defer mu.Unlock()

		elapsed := time.Since(start)
		percentage := float64(100)
		if total > 0 {
			percentage = float64(done) / float64(total) * 100
		}
		event := log.Info().
			Uint64("done", done).
			Int("total", total).
			Str("elapsed", elapsed.Round(time.Second).String())
		if done < uint64(total) && percentage > 0 {
			eta := time.Duration(float64(elapsed) / percentage * (100 - percentage))
			event = event.Str("eta", eta.Round(time.Second).String())
		}
		event.Msgf("%s progress (%.1f%%)", message, percentage)
	}

	logProgress(0)

	step := uint64(total) / 10
	if step == 0 {
		step = 1
	}

	return func(add int) {
		if add <= 0 {
			return
		}
		done := current.Add(uint64(add))
		// log every step passed by this call
		for tick := (done - uint64(add)) / step; tick < done/step; tick++ {
			logProgress((tick + 1) * step)
		}
	}
}
