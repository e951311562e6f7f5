package player

import (
	"time"

	"github.com/gopxl/beep/v2/speaker"

	"github.com/llehouerou/scrubber/internal/playback"
)

// Play starts or resumes playback. After the end of the stream it starts
// over from the beginning.
func (p *Player) Play() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.streamer == nil || p.ctrl == nil {
		return ErrNoSource
	}
	if p.state == Playing {
		return nil
	}

	speaker.Lock()
	if !p.queued && p.streamer.Position() >= p.streamer.Len() {
		_ = p.streamer.Seek(0)
	}
	p.ctrl.Paused = false
	speaker.Unlock()

	p.queueLocked()
	p.state = Playing
	return nil
}

// Pause pauses playback.
func (p *Player) Pause() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Playing || p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	p.state = Paused
}

// Paused reports whether the player is not currently playing.
func (p *Player) Paused() bool {
	return p.State() != Playing
}

// CurrentTime returns the playback position.
func (p *Player) CurrentTime() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.streamer == nil {
		return 0
	}
	speaker.Lock()
	pos := p.format.SampleRate.D(p.streamer.Position())
	speaker.Unlock()
	return pos
}

// Duration returns the length of the current source, or zero if none.
func (p *Player) Duration() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.trackInfo == nil {
		return 0
	}
	return p.trackInfo.Duration
}

// SetCurrentTime moves the playback position to pos.
// Non-blocking: only the most recent pending request is kept.
func (p *Player) SetCurrentTime(pos time.Duration) {
	if p.State() == Stopped {
		return
	}

	select {
	case p.seekCh <- pos:
	default:
		// Channel full, drain and send new value
		select {
		case <-p.seekCh:
		default:
		}
		select {
		case p.seekCh <- pos:
		default:
		}
	}
}

// seekLoop processes seek requests sequentially.
func (p *Player) seekLoop() {
	for {
		select {
		case <-p.done:
			return
		case pos := <-p.seekCh:
			p.doSeek(pos)
		}
	}
}

// doSeek mutes, seeks, waits for the buffer to drain and unmutes to avoid
// audio artifacts.
func (p *Player) doSeek(pos time.Duration) {
	p.mu.Lock()
	if p.streamer == nil || p.volume == nil {
		p.mu.Unlock()
		return
	}
	gen := p.gen

	speaker.Lock()
	n := p.format.SampleRate.N(pos)
	n = min(max(n, 0), max(p.streamer.Len()-1, 0))
	p.volume.Silent = true
	err := p.streamer.Seek(n)
	speaker.Unlock()
	p.mu.Unlock()

	if err != nil {
		p.log.WithError(err).WithField("position", pos).Warn("seek failed")
		p.EmitError(playback.ErrorEvent{Operation: "seek", Source: p.Source(), Err: err})
	}

	// Brief pause to let buffer clear before unmuting
	time.Sleep(100 * time.Millisecond)

	p.mu.Lock()
	if gen == p.gen && p.volume != nil {
		speaker.Lock()
		p.volume.Silent = p.volumeLevel <= 0
		speaker.Unlock()
	}
	p.mu.Unlock()

	p.EmitProgress(playback.Progress{Position: p.CurrentTime()})
}
