package services

import (
	"context"
	"io"
	"sync"
)

// fakeStream replays deltas, then returns err (io.EOF when nil).
type fakeStream struct {
	deltas []string
	err    error
	closed bool
}

func (f *fakeStream) Recv() (string, error) {
	if len(f.deltas) > 0 {
		d := f.deltas[0]
		f.deltas = f.deltas[1:]
		return d, nil
	}
	if f.err != nil {
		return "", f.err
	}
	return "", io.EOF
}

func (f *fakeStream) Close() error {
	f.closed = true
	return nil
}

type fakeCompletion struct {
	mu      sync.Mutex
	stream  *fakeStream
	openErr error
	reqs    []CompletionRequest
}

func (f *fakeCompletion) StreamChat(_ context.Context, req CompletionRequest) (CompletionStream, error) {
	f.mu.Lock()
	f.reqs = append(f.reqs, req)
	f.mu.Unlock()
	if f.openErr != nil {
		return nil, f.openErr
	}
	return f.stream, nil
}

type fakeAuth struct {
	signUpCalls []Credentials
	signInCalls []Credentials
	res         any
	err         error
}

func (f *fakeAuth) SignUp(creds Credentials) (any, error) {
	f.signUpCalls = append(f.signUpCalls, creds)
	return f.res, f.err
}

func (f *fakeAuth) SignInWithPassword(creds Credentials) (any, error) {
	f.signInCalls = append(f.signInCalls, creds)
	return f.res, f.err
}

// failingWriter accepts ok writes and then breaks.
type failingWriter struct {
	ok     int
	writes []string
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if len(w.writes) >= w.ok {
		return 0, io.ErrClosedPipe
	}
	w.writes = append(w.writes, string(p))
	return len(p), nil
}
