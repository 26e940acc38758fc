// Package pipeline runs one topic through the model and persists the result:
// cursor → topic → generator → parser → record → cursor+1.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/zulandar/topicrun/internal/cursor"
	"github.com/zulandar/topicrun/internal/ledger"
	"github.com/zulandar/topicrun/internal/notify"
	"github.com/zulandar/topicrun/internal/parse"
	"github.com/zulandar/topicrun/internal/record"
	"github.com/zulandar/topicrun/internal/topic"
)

// PromptPrefix is prepended to the topic to form the user prompt.
const PromptPrefix = "Write a Python 3.12+ focused, accurate explainer for: "

// InvokeErrorPrefix starts the raw response stored when the generation
// command fails.
const InvokeErrorPrefix = "ERROR calling "

// Prompt returns the user prompt for t.
func Prompt(t string) string {
	return PromptPrefix + t
}

// Generator produces model output for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Model() string
	Binary() string
}

// Runner wires the pipeline stages. Ledger and Notifier are optional.
type Runner struct {
	Space     *topic.Space
	Store     cursor.Store
	Generator Generator
	Writer    *record.Writer
	Ledger    *ledger.Ledger
	Notifier  *notify.Fanout
	Log       zerolog.Logger
	Now       func() time.Time
}

// Opts modifies a single run.
type Opts struct {
	// Index, when set, runs that index instead of the stored cursor and
	// leaves the cursor untouched.
	Index *uint64
}

// Result describes a completed run.
type Result struct {
	Index     uint64
	Topic     string
	Prompt    string
	Path      string
	Parsed    bool
	InvokeErr error
	Advanced  bool // the cursor was written back as Index+1
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// Run executes the pipeline once. A generator failure is stored in the
// record and does not fail the run; storage errors do.
func (r *Runner) Run(ctx context.Context, opts Opts) (*Result, error) {
	var idx uint64
	if opts.Index != nil {
		idx = *opts.Index
	} else {
		var err error
		idx, err = r.Store.Read(ctx)
		if err != nil {
			return nil, err
		}
	}

	t := r.Space.Topic(idx)
	prompt := Prompt(t)
	started := r.now()
	log := r.Log.With().Uint64("index", idx).Str("model", r.Generator.Model()).Logger()
	log.Info().Str("topic", t).Msg("requesting topic")

	raw, invokeErr := r.Generator.Generate(ctx, prompt)
	latency := r.now().Sub(started)
	if invokeErr != nil {
		log.Warn().Err(invokeErr).Msg("generation failed")
		raw = fmt.Sprintf("%s%s: %v", InvokeErrorPrefix, r.Generator.Binary(), invokeErr)
	}

	parsed, ok := parse.Parse(raw)
	if !ok {
		log.Debug().Msg("response is not JSON")
	}

	rec := record.New(started, r.Generator.Model(), idx, t, prompt, raw, parsed)
	path, err := r.Writer.Write(rec)
	if err != nil {
		return nil, err
	}
	log.Info().Str("path", path).Bool("parsed", ok).Dur("latency", latency).Msg("record saved")

	res := &Result{
		Index:     idx,
		Topic:     t,
		Prompt:    prompt,
		Path:      path,
		Parsed:    ok,
		InvokeErr: invokeErr,
	}

	if r.Ledger != nil {
		entry := ledger.Entry{
			TopicIndex: idx,
			Topic:      t,
			Model:      r.Generator.Model(),
			RecordPath: path,
			Parsed:     ok,
			Latency:    latency,
			CreatedAt:  started,
		}
		if invokeErr != nil {
			entry.InvokeError = invokeErr.Error()
		}
		if _, err := r.Ledger.Add(ctx, entry); err != nil {
			log.Warn().Err(err).Msg("ledger insert failed")
		}
	}

	if r.Notifier != nil {
		r.Notifier.Notify(ctx, notify.Summary{
			Index:      idx,
			Topic:      t,
			Model:      r.Generator.Model(),
			RecordPath: path,
			Parsed:     ok,
			Failed:     invokeErr != nil,
		})
	}

	if opts.Index == nil {
		if err := r.Store.Write(ctx, idx+1); err != nil {
			return res, err
		}
		res.Advanced = true
	}
	return res, nil
}
