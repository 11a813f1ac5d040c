package midi

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// ErrPortNotFound is returned when no MIDI port matches the requested name.
var ErrPortNotFound = errors.New("midi port not found")

// Manager handles MIDI port discovery and opening.
// A driver must be registered by the program, e.g. by importing rtmididrv.
type Manager struct {
	mu  sync.RWMutex
	log *slog.Logger
}

// NewManager creates a new MIDI manager. A nil logger means slog.Default().
func NewManager(log *slog.Logger) *Manager {
	if log == nil {
		log = slog.Default()
	}
	return &Manager{log: log}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListOutPorts returns the names of available MIDI output ports
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// OpenInput opens the input port called name. An exact match wins; otherwise
// the first port whose name contains name, ignoring case, is used.
func (m *Manager) OpenInput(name string) (*Input, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ins := midi.GetInPorts()
	names := make([]string, len(ins))
	for i, in := range ins {
		names[i] = in.String()
	}
	i, ok := MatchPort(names, name)
	if !ok {
		return nil, fmt.Errorf("input %q: %w", name, ErrPortNotFound)
	}
	if names[i] != name {
		m.log.Warn("input port matched by substring", "want", name, "port", names[i])
	}

	in := ins[i]
	if err := in.Open(); err != nil {
		return nil, fmt.Errorf("open input %q: %w", names[i], err)
	}
	m.log.Info("opened midi input", "port", names[i])
	return &Input{port: in}, nil
}

// OpenOutput opens the output port called name, matched like OpenInput.
func (m *Manager) OpenOutput(name string) (*Output, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	outs := midi.GetOutPorts()
	names := make([]string, len(outs))
	for i, out := range outs {
		names[i] = out.String()
	}
	i, ok := MatchPort(names, name)
	if !ok {
		return nil, fmt.Errorf("output %q: %w", name, ErrPortNotFound)
	}
	if names[i] != name {
		m.log.Warn("output port matched by substring", "want", name, "port", names[i])
	}

	out := outs[i]
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender for %q: %w", names[i], err)
	}
	m.log.Info("opened midi output", "port", names[i])
	return &Output{port: out, send: send}, nil
}

// MatchPort picks the port for want out of names.
func MatchPort(names []string, want string) (int, bool) {
	if want == "" {
		return -1, false
	}
	for i, n := range names {
		if n == want {
			return i, true
		}
	}
	lw := strings.ToLower(want)
	for i, n := range names {
		if strings.Contains(strings.ToLower(n), lw) {
			return i, true
		}
	}
	return -1, false
}

// Input is an opened MIDI input port.
type Input struct {
	port drivers.In
}

// Listen delivers every incoming message to fn on the driver's goroutine.
// fn must not keep msg after returning.
func (in *Input) Listen(fn func(msg []byte)) (stop func(), err error) {
	stop, err = midi.ListenTo(in.port, func(msg midi.Message, timestampms int32) {
		fn(msg)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start listening: %w", err)
	}
	return stop, nil
}

// Close closes the port.
func (in *Input) Close() error {
	return in.port.Close()
}

// Output is an opened MIDI output port.
type Output struct {
	port drivers.Out
	send func(midi.Message) error
}

// Send writes one raw message.
func (o *Output) Send(msg []byte) error {
	return o.send(midi.Message(msg))
}

// Close closes the port.
func (o *Output) Close() error {
	return o.port.Close()
}
