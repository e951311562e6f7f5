package controls

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/scrubber/internal/playback"
	"github.com/llehouerou/scrubber/internal/slider"
)

func TestFacade_PlayAndPause(t *testing.T) {
	c, m, _ := newLoaded(t, time.Minute)
	f := NewFacade(c)

	require.NoError(t, f.Play())
	assert.Equal(t, PauseIcon, c.State().Icon)
	assert.False(t, m.Paused())

	f.Pause()
	assert.Equal(t, PlayIcon, c.State().Icon)
	assert.True(t, m.Paused())
}

func TestFacade_PlayRejected(t *testing.T) {
	c, m, _ := newLoaded(t, time.Minute)
	f := NewFacade(c)
	engineErr := errors.New("autoplay blocked")
	m.SetPlayError(engineErr)

	err := f.Play()
	require.ErrorIs(t, err, ErrPlaybackRejected)
	require.ErrorIs(t, err, engineErr)
	assert.Equal(t, PlayIcon, c.State().Icon)
	assert.Equal(t, 1, m.PlayCalls())
}

func TestFacade_TogglePlay(t *testing.T) {
	c, m, _ := newLoaded(t, time.Minute)
	f := NewFacade(c)

	require.NoError(t, f.TogglePlay())
	assert.False(t, m.Paused())
	assert.Equal(t, PauseIcon, c.State().Icon)

	require.NoError(t, f.TogglePlay())
	assert.True(t, m.Paused())
	assert.Equal(t, PlayIcon, c.State().Icon)
}

func TestFacade_SetSourceResetsState(t *testing.T) {
	c, m, _ := newLoaded(t, 200*time.Second)
	f := NewFacade(c)
	c.OnProgress(playback.Progress{Position: 50 * time.Second})
	require.NoError(t, f.Play())
	require.NoError(t, c.Press(slider.TimeSlider, slider.Point{X: 10}, timeBar))

	require.NoError(t, f.SetSource("/music/next.flac"))

	st := c.State()
	assert.Equal(t, "/music/next.flac", m.Source())
	assert.Zero(t, st.ProgressRatio)
	assert.Equal(t, "0:00", st.CurrentTimeLabel)
	assert.Equal(t, "0:00", st.TotalTimeLabel)
	assert.Equal(t, PlayIcon, st.Icon)
	assert.True(t, st.LoadingVisible)
	assert.False(t, st.ControlsVisible)
	assert.False(t, c.Dragging(slider.TimeSlider))

	// The new source's metadata fills the total label again.
	c.OnMetadata(playback.MetadataReady{Duration: 90 * time.Second})
	assert.Equal(t, "1:30", c.State().TotalTimeLabel)
}

func TestFacade_SetSourceError(t *testing.T) {
	c, m, _ := newLoaded(t, time.Minute)
	m.SetSourceError(errors.New("unreadable"))

	require.Error(t, NewFacade(c).SetSource("/bad.mp3"))
}

func TestFacade_JumpAndNudge(t *testing.T) {
	c, m, _ := newLoaded(t, 200*time.Second)
	f := NewFacade(c)
	m.SetPosition(100 * time.Second)

	assert.False(t, f.JumpToTime(100*time.Second+300*time.Millisecond))
	assert.True(t, f.Nudge(5*time.Second))
	assert.True(t, f.Nudge(-10*time.Second))
	assert.Equal(t, []time.Duration{105 * time.Second, 95 * time.Second}, m.SeekCalls())
}

func TestFacade_NudgeAtEndOfTrack(t *testing.T) {
	c, m, _ := newLoaded(t, 200*time.Second)
	f := NewFacade(c)
	m.SetPosition(199*time.Second + 400*time.Millisecond)

	assert.False(t, f.Nudge(5*time.Second))
	assert.Empty(t, m.SeekCalls())
}

func TestFacade_NudgeVolume(t *testing.T) {
	c, m, _ := newLoaded(t, time.Minute)
	f := NewFacade(c)

	f.NudgeVolume(0.05)
	assert.Equal(t, 1.0, m.Volume())

	f.NudgeVolume(-0.25)
	assert.InDelta(t, 0.75, m.Volume(), 1e-9)
	assert.Equal(t, VolumeFull, c.State().VolumeTier)
}
