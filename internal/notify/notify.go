// Package notify announces saved records to chat webhooks. Delivery is
// best-effort: failures are logged, never returned to the run.
package notify

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Summary is the information announced for one run.
type Summary struct {
	Index      uint64
	Topic      string
	Model      string
	RecordPath string
	Parsed     bool
	Failed     bool // the generation command did not succeed
}

// Notifier delivers a Summary to one destination.
type Notifier interface {
	Name() string
	Notify(ctx context.Context, s Summary) error
}

// Message renders s as a single line of text.
func Message(s Summary) string {
	status := "ok"
	switch {
	case s.Failed:
		status = "generation failed"
	case !s.Parsed:
		status = "unparsed"
	}
	return fmt.Sprintf("topicrun #%d [%s, %s]: %s -> %s", s.Index, s.Model, status, s.Topic, s.RecordPath)
}

// Fanout sends to every notifier and logs failures.
type Fanout struct {
	Notifiers []Notifier
	Log       zerolog.Logger
}

// Notify delivers s to each notifier in turn.
func (f *Fanout) Notify(ctx context.Context, s Summary) {
	for _, n := range f.Notifiers {
		if err := n.Notify(ctx, s); err != nil {
			f.Log.Warn().Err(err).Str("notifier", n.Name()).Uint64("index", s.Index).Msg("notify failed")
			continue
		}
		f.Log.Debug().Str("notifier", n.Name()).Uint64("index", s.Index).Msg("notified")
	}
}
