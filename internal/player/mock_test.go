package player

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/scrubber/internal/playback"
)

func TestMock_Transport(t *testing.T) {
	m := NewMock()
	assert.True(t, m.Paused())

	require.NoError(t, m.Play())
	assert.False(t, m.Paused())
	m.Pause()
	assert.True(t, m.Paused())
	assert.Equal(t, 1, m.PlayCalls())

	m.SetPlayError(errors.New("blocked"))
	require.Error(t, m.Play())
	assert.True(t, m.Paused())
	assert.Equal(t, 2, m.PlayCalls())
}

func TestMock_SetSourceResets(t *testing.T) {
	m := NewMock()
	m.SetDuration(time.Minute)
	m.SetPosition(10 * time.Second)
	m.SetReadyState(playback.HaveEnoughData)
	m.SetPaused(false)

	require.NoError(t, m.SetSource("/a.mp3"))
	assert.Equal(t, "/a.mp3", m.Source())
	assert.True(t, m.Paused())
	assert.Zero(t, m.CurrentTime())
	assert.Zero(t, m.Duration())
	assert.Equal(t, playback.HaveNothing, m.ReadyState())

	m.SetSourceError(errors.New("bad"))
	require.Error(t, m.SetSource("/b.mp3"))
	assert.Equal(t, "/a.mp3", m.Source())
}

func TestMock_RecordsCalls(t *testing.T) {
	m := NewMock()
	m.SetCurrentTime(3 * time.Second)
	m.SetVolume(0.5)
	m.SetVolume(4)

	assert.Equal(t, []time.Duration{3 * time.Second}, m.SeekCalls())
	assert.Equal(t, 3*time.Second, m.CurrentTime())
	assert.Equal(t, []float64{0.5, 4}, m.VolumeCalls())
	assert.Equal(t, 1.0, m.Volume())
}
