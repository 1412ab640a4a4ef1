// Package projectortest provides in-memory implementations of the projector
// Bus and PowerLine for tests and simulations.
package projectortest

import (
	"sync"
)

// Bus records every frame sent and replays queued notifications.
// It is safe for concurrent use.
type Bus struct {
	mu      sync.Mutex
	sent    []Frame
	pending [][]byte

	// SendErr, when set, is returned by Send and nothing is recorded
	SendErr error

	// ReceiveErr, when set, is returned by Receive
	ReceiveErr error

	// OnSend, when set, is called after a frame is recorded. Simulations use
	// it to queue the engine's answer.
	OnSend func(b *Bus, frame []byte)
}

// Frame is one recorded write.
type Frame struct {
	Addr uint16
	Data []byte
}

// Send records a copy of frame.
func (b *Bus) Send(addr uint16, frame []byte) error {
	b.mu.Lock()
	if b.SendErr != nil {
		err := b.SendErr
		b.mu.Unlock()
		return err
	}
	data := append([]byte(nil), frame...)
	b.sent = append(b.sent, Frame{Addr: addr, Data: data})
	hook := b.OnSend
	b.mu.Unlock()

	if hook != nil {
		hook(b, data)
	}
	return nil
}

// Receive copies the oldest queued notification into buf. It returns 0 when
// the queue is empty. Frames longer than buf are truncated.
func (b *Bus) Receive(addr uint16, buf []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ReceiveErr != nil {
		return 0, b.ReceiveErr
	}
	if len(b.pending) == 0 {
		return 0, nil
	}

	frame := b.pending[0]
	b.pending = b.pending[1:]
	return copy(buf, frame), nil
}

// Queue appends notification frames to be returned by Receive.
func (b *Bus) Queue(frames ...[]byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, f := range frames {
		b.pending = append(b.pending, append([]byte(nil), f...))
	}
}

// Pending returns the number of queued notifications.
func (b *Bus) Pending() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}

// Sent returns the recorded frames.
func (b *Bus) Sent() []Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Frame(nil), b.sent...)
}

// SentOpcodes returns the first byte of every recorded frame.
func (b *Bus) SentOpcodes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	ops := make([]byte, 0, len(b.sent))
	for _, f := range b.sent {
		if len(f.Data) > 0 {
			ops = append(ops, f.Data[0])
		}
	}
	return ops
}

// Last returns the most recent frame, or nil.
func (b *Bus) Last() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.sent) == 0 {
		return nil
	}
	return b.sent[len(b.sent)-1].Data
}

// Reset clears recorded frames, queued notifications and injected errors.
func (b *Bus) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = nil
	b.pending = nil
	b.SendErr = nil
	b.ReceiveErr = nil
}

// Power records the supply level.
type Power struct {
	mu      sync.Mutex
	on      bool
	changes []bool

	// Err, when set, is returned by SetPower and the level is unchanged
	Err error
}

// SetPower records the new level.
func (p *Power) SetPower(on bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return p.Err
	}
	p.on = on
	p.changes = append(p.changes, on)
	return nil
}

// On reports the current level.
func (p *Power) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}

// Changes returns every level set, in order.
func (p *Power) Changes() []bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]bool(nil), p.changes...)
}
