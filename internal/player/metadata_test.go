package player

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createMinimalMP3 creates a minimal valid MP3 file for testing.
// Returns MP3 frame header + padding (417 bytes total for 128kbps frame).
func createMinimalMP3(t *testing.T, path string) {
	t.Helper()
	// MP3 frame header (MPEG1 Layer3, 128kbps, 44100Hz, stereo) + padding
	mp3Frame := make([]byte, 417)
	mp3Frame[0] = 0xff
	mp3Frame[1] = 0xfb
	mp3Frame[2] = 0x90
	mp3Frame[3] = 0x00

	require.NoError(t, os.WriteFile(path, mp3Frame, 0o600))
}

func TestReadTrackInfo_FallbackOnMalformedUTF16(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "test.mp3")
	createMinimalMP3(t, mp3Path)

	tag, err := id3v2.Open(mp3Path, id3v2.Options{Parse: true})
	require.NoError(t, err)
	tag.AddTextFrame("TIT2", id3v2.EncodingUTF16, "Test Title UTF16")
	tag.AddTextFrame("TPE1", id3v2.EncodingUTF16, "Test Artist UTF16")
	tag.AddTextFrame("TALB", id3v2.EncodingUTF16, "Test Album UTF16")
	require.NoError(t, tag.Save())
	tag.Close()

	info, err := ReadTrackInfo(mp3Path)
	require.NoError(t, err)
	assert.NotEmpty(t, info.Title)
	assert.NotEmpty(t, info.Artist)
	assert.NotEmpty(t, info.Album)
}

func TestReadTrackInfo_TitleFallsBackToFileName(t *testing.T) {
	mp3Path := filepath.Join(t.TempDir(), "untagged.mp3")
	createMinimalMP3(t, mp3Path)

	info, err := ReadTrackInfo(mp3Path)
	require.NoError(t, err)
	assert.Equal(t, "untagged.mp3", info.Title)
	assert.Equal(t, mp3Path, info.Path)
}

func TestReadTrackInfo_MissingFile(t *testing.T) {
	_, err := ReadTrackInfo(filepath.Join(t.TempDir(), "nope.mp3"))
	require.Error(t, err)
}

func TestTrackInfo_DisplayTitle(t *testing.T) {
	var nilInfo *TrackInfo
	assert.Empty(t, nilInfo.DisplayTitle())
	assert.Equal(t, "Song", (&TrackInfo{Title: "Song"}).DisplayTitle())
	assert.Equal(t, "Band - Song", (&TrackInfo{Title: "Song", Artist: "Band"}).DisplayTitle())
}

// writeFLAC writes a FLAC header with an empty STREAMINFO block and, when
// comments is non-nil, a Vorbis comment block.
func writeFLAC(t *testing.T, path string, comments []string) {
	t.Helper()
	var buf []byte
	buf = append(buf, "fLaC"...)

	last := byte(0)
	if comments == nil {
		last = 0x80
	}
	buf = append(buf, last|0x00, 0, 0, 34)
	buf = append(buf, make([]byte, 34)...)

	if comments != nil {
		vendor := "test"
		var data []byte
		data = binary.LittleEndian.AppendUint32(data, uint32(len(vendor)))
		data = append(data, vendor...)
		data = binary.LittleEndian.AppendUint32(data, uint32(len(comments)))
		for _, c := range comments {
			data = binary.LittleEndian.AppendUint32(data, uint32(len(c)))
			data = append(data, c...)
		}
		n := len(data)
		buf = append(buf, 0x80|0x04, byte(n>>16), byte(n>>8), byte(n))
		buf = append(buf, data...)
	}

	require.NoError(t, os.WriteFile(path, buf, 0o600))
}

func TestReadFLACComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "track.flac")
	writeFLAC(t, path, []string{"TITLE=Night Drive", "ARTIST=Band", "ALBUM=Roads"})

	info, err := readFLACComments(path)
	require.NoError(t, err)
	assert.Equal(t, &TrackInfo{
		Path:   path,
		Title:  "Night Drive",
		Artist: "Band",
		Album:  "Roads",
	}, info)
}

func TestReadFLACComments_NoCommentBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bare.flac")
	writeFLAC(t, path, nil)

	info, err := readFLACComments(path)
	require.NoError(t, err)
	assert.Equal(t, "bare.flac", info.Title)
	assert.Empty(t, info.Artist)
}

func TestReadFLACComments_NotFLAC(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.flac")
	require.NoError(t, os.WriteFile(path, []byte("not a flac file"), 0o600))

	_, err := readFLACComments(path)
	require.Error(t, err)
}
