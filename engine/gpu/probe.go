package gpu

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
)

// Logger is the subset of *log.Logger used by this package.
type Logger interface {
	Debugf(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
}

// drain limit; a lost context keeps returning an error forever
const maxErrorDrain = 32

// Probe drains and reports the graphics API error queue around fallible calls.
// With Debug set, a failed check panics with a *CallError.
type Probe struct {
	API   API
	Log   Logger
	Debug bool
}

// NewProbe returns a probe over api. A nil logger falls back to the default logger.
func NewProbe(api API, logger Logger, debug bool) *Probe {
	if logger == nil {
		logger = log.Default()
	}
	return &Probe{API: api, Log: logger, Debug: debug}
}

// Clear discards all pending error codes.
func (p *Probe) Clear() {
	for i := 0; i < maxErrorDrain; i++ {
		if p.API.GetError() == NoError {
			return
		}
	}
}

// Check drains the error queue, logs every code against call and location, and
// reports whether the queue was empty.
func (p *Probe) Check(call, location string) bool {
	codes := p.drain()
	p.report(codes, call, location)
	return len(codes) == 0
}

func (p *Probe) drain() []uint32 {
	var codes []uint32
	for i := 0; i < maxErrorDrain; i++ {
		code := p.API.GetError()
		if code == NoError {
			break
		}
		codes = append(codes, code)
	}
	return codes
}

func (p *Probe) report(codes []uint32, call, location string) {
	for _, code := range codes {
		p.Log.Errorf("[OpenGL error] (0x%04X %s) %s %s", code, ErrorName(code), call, location)
	}
}

// Call clears the error queue, runs fn and checks the queue again. The location
// reported is the caller of Call.
func (p *Probe) Call(call string, fn func()) {
	p.Clear()
	fn()
	codes := p.drain()
	if len(codes) == 0 {
		return
	}
	loc := callerLocation(2)
	p.report(codes, call, loc)
	if p.Debug {
		panic(&CallError{Call: call, Location: loc, Codes: codes})
	}
}

func callerLocation(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// CallError is raised by a debug probe when a wrapped call left errors behind.
type CallError struct {
	Call     string
	Location string
	Codes    []uint32
}

func (e *CallError) Error() string {
	names := make([]string, len(e.Codes))
	for i, c := range e.Codes {
		names[i] = ErrorName(c)
	}
	return fmt.Sprintf("gpu: %s at %s: %s", e.Call, e.Location, strings.Join(names, ", "))
}
