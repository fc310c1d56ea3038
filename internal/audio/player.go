// Package audio plays the background music stream, short sound effects and
// desktop notifications.
package audio

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sync"
)

// ErrNoPlayer is returned when no player command is configured.
var ErrNoPlayer = errors.New("no music player configured")

// Player controls the background music stream.
type Player interface {
	// Play starts the stream. The returned channel receives the exit error
	// (nil on a clean exit) once playback ends for any reason.
	Play() (<-chan error, error)
	// Stop ends playback. Stopping an idle player is a no-op.
	Stop() error
}

// ExecPlayer delegates playback to an external command such as mpv.
type ExecPlayer struct {
	command []string
	url     string

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewExecPlayer returns a player running command with url appended.
func NewExecPlayer(command []string, url string) *ExecPlayer {
	return &ExecPlayer{command: command, url: url}
}

// Play implements Player.
func (p *ExecPlayer) Play() (<-chan error, error) {
	if len(p.command) == 0 || p.command[0] == "" {
		return nil, ErrNoPlayer
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}

	ctx, cancel := context.WithCancel(context.Background())
	args := append(append([]string{}, p.command[1:]...), p.url)
	cmd := exec.CommandContext(ctx, p.command[0], args...)
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("failed to start %s: %w", p.command[0], err)
	}
	p.cancel = cancel

	done := make(chan error, 1)
	go func() {
		err := cmd.Wait()
		if ctx.Err() != nil {
			// Killed by Stop or a newer Play.
			err = nil
		}
		done <- err
		close(done)
	}()
	return done, nil
}

// Stop implements Player.
func (p *ExecPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	return nil
}

// NoopPlayer never plays anything; it backs disabled music and tests.
type NoopPlayer struct {
	// Err, when set, is returned by Play.
	Err error

	mu      sync.Mutex
	playing bool
	done    chan error
}

// Play implements Player.
func (p *NoopPlayer) Play() (<-chan error, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.Err != nil {
		return nil, p.Err
	}
	p.playing = true
	p.done = make(chan error, 1)
	return p.done, nil
}

// Stop implements Player.
func (p *NoopPlayer) Stop() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.playing {
		p.playing = false
		p.done <- nil
		close(p.done)
	}
	return nil
}

// Playing reports whether Play was called without a matching Stop.
func (p *NoopPlayer) Playing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.playing
}
