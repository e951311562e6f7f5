// internal/player/mock.go
package player

import (
	"sync"
	"time"

	"github.com/llehouerou/scrubber/internal/playback"
)

// Mock is a test double implementing playback.Handle. Events are only
// emitted when a test asks for them through the embedded Hub.
type Mock struct {
	playback.Hub

	mu        sync.Mutex
	paused    bool
	position  time.Duration
	duration  time.Duration
	volume    float64
	readiness playback.Readiness
	source    string
	track     *TrackInfo
	playErr   error
	sourceErr error
	playCalls int
	seekCalls []time.Duration
	volCalls  []float64
}

var _ playback.Handle = (*Mock)(nil)

// NewMock creates a paused mock with full volume and nothing loaded.
func NewMock() *Mock {
	return &Mock{paused: true, volume: 1}
}

func (m *Mock) CurrentTime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

// SetCurrentTime records the seek and moves the position.
func (m *Mock) SetCurrentTime(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seekCalls = append(m.seekCalls, pos)
	m.position = pos
}

func (m *Mock) Duration() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.duration
}

func (m *Mock) Volume() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume
}

// SetVolume records the call and stores the level. It does not emit
// VolumeChange; use EmitVolume for that.
func (m *Mock) SetVolume(level float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.volCalls = append(m.volCalls, level)
	m.volume = clampLevel(level)
}

func (m *Mock) Paused() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.paused
}

func (m *Mock) ReadyState() playback.Readiness {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.readiness
}

// Play fails with the error set by SetPlayError, if any.
func (m *Mock) Play() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playCalls++
	if m.playErr != nil {
		return m.playErr
	}
	m.paused = false
	return nil
}

func (m *Mock) Pause() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = true
}

// SetSource stores src and resets the mock to a paused, unloaded state.
func (m *Mock) SetSource(src string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sourceErr != nil {
		return m.sourceErr
	}
	m.source = src
	m.paused = true
	m.position = 0
	m.duration = 0
	m.readiness = playback.HaveNothing
	return nil
}

func (m *Mock) TrackInfo() *TrackInfo {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.track
}

func (m *Mock) Close() error {
	m.Hub.Close()
	return nil
}

// Test helpers

func (m *Mock) SetPosition(pos time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position = pos
}

func (m *Mock) SetDuration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.duration = d
}

func (m *Mock) SetReadyState(r playback.Readiness) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.readiness = r
}

func (m *Mock) SetPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.paused = paused
}

func (m *Mock) SetPlayError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.playErr = err
}

func (m *Mock) SetSourceError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sourceErr = err
}

func (m *Mock) SetTrackInfo(t *TrackInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.track = t
}

func (m *Mock) Source() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.source
}

func (m *Mock) PlayCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.playCalls
}

func (m *Mock) SeekCalls() []time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]time.Duration(nil), m.seekCalls...)
}

func (m *Mock) VolumeCalls() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.volCalls...)
}
