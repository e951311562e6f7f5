package player

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bogem/id3v2/v2"
	"github.com/dhowden/tag"
	"github.com/go-flac/flacvorbis"
	goflac "github.com/go-flac/go-flac"
)

// TrackInfo describes the loaded source. Duration comes from the decoder,
// the rest from tags.
type TrackInfo struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Duration time.Duration
}

// DisplayTitle returns "Artist - Title" when an artist is known.
func (t *TrackInfo) DisplayTitle() string {
	if t == nil {
		return ""
	}
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// ReadTrackInfo reads tag metadata from path. The title falls back to the
// file name when the tags carry none.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		switch strings.ToLower(filepath.Ext(path)) {
		case extMP3:
			// dhowden/tag has issues with some UTF-16 encoded ID3 tags
			return readID3v2(path)
		case extFLAC:
			return readFLACComments(path)
		}
		return nil, err
	}

	title := m.Title()
	if title == "" {
		title = filepath.Base(path)
	}
	return &TrackInfo{
		Path:   path,
		Title:  title,
		Artist: m.Artist(),
		Album:  m.Album(),
	}, nil
}

func readID3v2(path string) (*TrackInfo, error) {
	id3tag, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer id3tag.Close()

	title := id3tag.Title()
	if title == "" {
		title = filepath.Base(path)
	}
	return &TrackInfo{
		Path:   path,
		Title:  title,
		Artist: id3tag.Artist(),
		Album:  id3tag.Album(),
	}, nil
}

// readFLACComments reads the Vorbis comment block directly. A file with
// no comment block still yields a TrackInfo titled after the file.
func readFLACComments(path string) (*TrackInfo, error) {
	f, err := goflac.ParseFile(path)
	if err != nil {
		return nil, err
	}

	info := &TrackInfo{Path: path}
	for _, meta := range f.Meta {
		if meta.Type != goflac.VorbisComment {
			continue
		}
		cmts, err := flacvorbis.ParseFromMetaDataBlock(*meta)
		if err != nil {
			return nil, err
		}
		info.Title = firstComment(cmts, flacvorbis.FIELD_TITLE)
		info.Artist = firstComment(cmts, flacvorbis.FIELD_ARTIST)
		info.Album = firstComment(cmts, flacvorbis.FIELD_ALBUM)
		break
	}

	if info.Title == "" {
		info.Title = filepath.Base(path)
	}
	return info, nil
}

func firstComment(cmts *flacvorbis.MetaDataBlockVorbisComment, field string) string {
	values, err := cmts.Get(field)
	if err != nil || len(values) == 0 {
		return ""
	}
	return values[0]
}
