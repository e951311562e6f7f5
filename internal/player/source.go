package player

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
	"github.com/sirupsen/logrus"

	"github.com/llehouerou/scrubber/internal/playback"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
	extOGG  = ".ogg"
)

// IsAudioFile reports whether the engine can decode path.
func IsAudioFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV, extOGG:
		return true
	}
	return false
}

// ResolveSource turns a source string into a local file path.
// Plain paths and file:// URLs are accepted.
func ResolveSource(src string) (string, error) {
	if src == "" {
		return "", ErrNoSource
	}
	u, err := url.Parse(src)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Not a URL, or a Windows drive letter.
		return src, nil
	}
	if u.Scheme != "file" {
		return "", fmt.Errorf("%w: %s", ErrRemoteSource, u.Scheme)
	}
	if u.Path == "" {
		return "", ErrNoSource
	}
	return filepath.FromSlash(u.Path), nil
}

// SetSource loads a new source. The previous one is released first.
// On success the player is Paused at position zero, MetadataReady and
// CanPlay have been emitted and the speaker is initialized.
func (p *Player) SetSource(src string) error {
	path, err := ResolveSource(src)
	if err != nil {
		return err
	}
	if !IsAudioFile(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	p.mu.Lock()
	p.unloadLocked()
	p.gen++
	p.source = path
	p.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		p.emitSourceError("open", path, err)
		return err
	}
	streamer, format, err := decode(f, path)
	if err != nil {
		f.Close()
		p.emitSourceError("decode", path, err)
		return err
	}

	info, err := ReadTrackInfo(path)
	if err != nil {
		info = &TrackInfo{Path: path, Title: filepath.Base(path)}
	}
	info.Duration = format.SampleRate.D(streamer.Len())

	p.mu.Lock()
	p.file = f
	p.streamer = streamer
	p.format = format
	p.trackInfo = info
	p.readiness = playback.HaveMetadata
	p.state = Paused
	gen := p.gen
	p.mu.Unlock()

	p.log.WithFields(logrus.Fields{
		"source":   path,
		"duration": info.Duration,
		"rate":     int(format.SampleRate),
	}).Info("source loaded")
	p.EmitMetadata(playback.MetadataReady{Duration: info.Duration})

	rate, err := ensureSpeaker(format.SampleRate)
	if err != nil {
		p.emitSourceError("speaker", path, err)
		return err
	}

	p.mu.Lock()
	if gen != p.gen {
		// Replaced while the speaker was starting.
		p.mu.Unlock()
		return nil
	}
	var out beep.Streamer = streamer
	if format.SampleRate != rate {
		out = beep.Resample(4, format.SampleRate, rate, streamer)
	}
	p.ctrl = &beep.Ctrl{Streamer: out, Paused: true}
	p.volume = &effects.Volume{Streamer: p.ctrl, Base: 2, Volume: levelToVolume(p.volumeLevel), Silent: p.volumeLevel <= 0}
	p.readiness = playback.HaveEnoughData
	p.mu.Unlock()

	p.EmitCanPlay()
	return nil
}

// queueLocked hands the current stream to the speaker.
func (p *Player) queueLocked() {
	if p.queued || p.volume == nil {
		return
	}
	gen := p.gen
	p.queued = true
	speaker.Play(beep.Seq(p.volume, beep.Callback(func() {
		// Runs on the speaker goroutine with its lock held.
		go p.finish(gen)
	})))
}

// finish handles the end of stream for source generation gen.
func (p *Player) finish(gen uint64) {
	p.mu.Lock()
	if gen != p.gen || p.state == Stopped {
		p.mu.Unlock()
		return
	}
	p.queued = false
	p.state = Paused
	p.mu.Unlock()

	p.EmitEnded()
}

// unloadLocked releases the current source.
func (p *Player) unloadLocked() {
	if p.queued {
		speaker.Clear()
		p.queued = false
	}
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.volume = nil
	p.trackInfo = nil
	p.source = ""
	p.readiness = playback.HaveNothing
	p.state = Stopped
}

func (p *Player) emitSourceError(op, path string, err error) {
	p.log.WithError(err).WithField("source", path).Warn(op + " failed")
	p.EmitError(playback.ErrorEvent{Operation: op, Source: path, Err: err})
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3:
		return mp3.Decode(f)
	case extFLAC:
		// Skip ID3v2 tag if present (some taggers add it to FLAC files)
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	case extWAV:
		return wav.Decode(f)
	case extOGG:
		return vorbis.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// skipID3v2 skips an ID3v2 tag if present at the beginning of the file.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return err
	}
	if n < 10 || string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
