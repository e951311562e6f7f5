package playback

import (
	"errors"
	"testing"
	"time"
)

func TestReadiness_String(t *testing.T) {
	tests := []struct {
		r    Readiness
		want string
	}{
		{HaveNothing, "HaveNothing"},
		{HaveMetadata, "HaveMetadata"},
		{HaveCurrentData, "HaveCurrentData"},
		{HaveFutureData, "HaveFutureData"},
		{HaveEnoughData, "HaveEnoughData"},
		{Readiness(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestReadiness_AtLeast(t *testing.T) {
	tests := []struct {
		r        Readiness
		metadata bool
		playable bool
	}{
		{HaveNothing, false, false},
		{HaveMetadata, true, false},
		{HaveCurrentData, true, false},
		{HaveFutureData, true, true},
		{HaveEnoughData, true, true},
	}
	for _, tt := range tests {
		if got := tt.r.AtLeast(MetadataThreshold); got != tt.metadata {
			t.Errorf("%v.AtLeast(metadata) = %v, want %v", tt.r, got, tt.metadata)
		}
		if got := tt.r.AtLeast(PlayableThreshold); got != tt.playable {
			t.Errorf("%v.AtLeast(playable) = %v, want %v", tt.r, got, tt.playable)
		}
	}
}

func TestHub_FansOutToAllSubscribers(t *testing.T) {
	var h Hub
	a := h.Subscribe()
	b := h.Subscribe()

	h.EmitMetadata(MetadataReady{Duration: 200 * time.Second})
	h.EmitVolume(VolumeChange{Volume: 0.3})
	h.EmitCanPlay()
	h.EmitEnded()
	h.EmitError(ErrorEvent{Operation: "decode", Err: errors.New("boom")})

	for name, sub := range map[string]*Subscription{"a": a, "b": b} {
		select {
		case e := <-sub.MetadataReady:
			if e.Duration != 200*time.Second {
				t.Errorf("%s: Duration = %v, want 200s", name, e.Duration)
			}
		default:
			t.Errorf("%s: missing MetadataReady", name)
		}
		select {
		case e := <-sub.VolumeChanged:
			if e.Volume != 0.3 {
				t.Errorf("%s: Volume = %v, want 0.3", name, e.Volume)
			}
		default:
			t.Errorf("%s: missing VolumeChange", name)
		}
		select {
		case <-sub.CanPlay:
		default:
			t.Errorf("%s: missing CanPlay", name)
		}
		select {
		case <-sub.Ended:
		default:
			t.Errorf("%s: missing Ended", name)
		}
		select {
		case e := <-sub.Error:
			if e.Operation != "decode" {
				t.Errorf("%s: Operation = %q, want decode", name, e.Operation)
			}
		default:
			t.Errorf("%s: missing ErrorEvent", name)
		}
	}
}

func TestHub_CloseIsIdempotentAndSignalsDone(t *testing.T) {
	var h Hub
	sub := h.Subscribe()

	h.Close()
	h.Close()

	select {
	case <-sub.Done:
	default:
		t.Fatal("Done not closed")
	}

	// Emitting after close must not panic.
	h.EmitProgress(Progress{Position: time.Second})

	late := h.Subscribe()
	select {
	case <-late.Done:
	default:
		t.Fatal("subscription after Close should be done")
	}
}
