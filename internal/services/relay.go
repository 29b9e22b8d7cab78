package services

import (
	"fmt"
	"io"
	"net/http"
)

const (
	errorFallback = "Sorry, there was an error connecting to the AI service. (%s)"
	emptyFallback = "Sorry, no response."
)

type RelayState int

const (
	StateStreaming RelayState = iota
	StateHadContent
	StateErrored
	StateDone
)

func (s RelayState) String() string {
	switch s {
	case StateStreaming:
		return "STREAMING"
	case StateHadContent:
		return "HAD_CONTENT"
	case StateErrored:
		return "ERRORED"
	case StateDone:
		return "DONE"
	default:
		return fmt.Sprintf("RelayState(%d)", int(s))
	}
}

// Relay forwards the deltas of one completion stream to one writer and
// decides, once the stream is over, which trailer the client gets.
// It is not safe for concurrent use; every chat request owns its own.
type Relay struct {
	w          io.Writer
	state      RelayState
	hadContent bool
	err        error
}

func NewRelay(w io.Writer) *Relay {
	return &Relay{w: w, state: StateStreaming}
}

func (r *Relay) State() RelayState {
	return r.state
}

// Forward writes delta and flushes it. Empty deltas are dropped.
func (r *Relay) Forward(delta string) error {
	if delta == "" || r.state == StateErrored || r.state == StateDone {
		return nil
	}
	if err := r.write(delta); err != nil {
		return err
	}
	r.hadContent = true
	r.state = StateHadContent
	return nil
}

// Fail records the provider error. Content already forwarded stays sent.
func (r *Relay) Fail(err error) {
	if r.state == StateDone || err == nil {
		return
	}
	r.err = err
	r.state = StateErrored
}

// Finish writes the trailer chosen from the error and content flags and
// moves the relay to DONE. Calling it again is a no-op.
func (r *Relay) Finish() error {
	if r.state == StateDone {
		return nil
	}
	r.state = StateDone

	switch {
	case r.err != nil:
		return r.write(fmt.Sprintf(errorFallback, r.err.Error()))
	case !r.hadContent:
		return r.write(emptyFallback)
	default:
		return nil
	}
}

func (r *Relay) write(text string) error {
	if _, err := io.WriteString(r.w, text); err != nil {
		return err
	}
	if f, ok := r.w.(http.Flusher); ok {
		f.Flush()
	}
	return nil
}
