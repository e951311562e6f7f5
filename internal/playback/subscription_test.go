package playback

import (
	"testing"
	"testing/synctest"
	"time"
)

func TestNewSubscription_ChannelsReadable(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		sub := newSubscription()

		sub.sendProgress(Progress{Position: 30 * time.Second})
		sub.sendVolume(VolumeChange{Volume: 0.8})
		sub.sendMetadata(MetadataReady{Duration: time.Minute})
		sub.sendCanPlay(CanPlay{})
		sub.sendEnded(Ended{})

		if p := <-sub.Progress; p.Position != 30*time.Second {
			t.Errorf("Progress.Position = %v, want 30s", p.Position)
		}
		if v := <-sub.VolumeChanged; v.Volume != 0.8 {
			t.Errorf("VolumeChanged.Volume = %v, want 0.8", v.Volume)
		}
		if m := <-sub.MetadataReady; m.Duration != time.Minute {
			t.Errorf("MetadataReady.Duration = %v, want 1m", m.Duration)
		}
		<-sub.CanPlay
		<-sub.Ended
	})
}

func TestSubscription_Close_SignalsDone(t *testing.T) {
	synctest.Test(t, func(_ *testing.T) {
		sub := newSubscription()
		sub.close()
		<-sub.Done
	})
}

func TestSubscription_NonBlocking_DropsWhenFull(t *testing.T) {
	sub := newSubscription()

	for range eventBufferSize + 5 {
		sub.sendVolume(VolumeChange{})
	}

	count := 0
	for {
		select {
		case <-sub.VolumeChanged:
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d (buffer size)", count, eventBufferSize)
	}
}

func TestSubscription_Progress_KeepsNewestWhenFull(t *testing.T) {
	sub := newSubscription()

	for i := range eventBufferSize + 5 {
		sub.sendProgress(Progress{Position: time.Duration(i) * time.Second})
	}

	var last Progress
	count := 0
	for {
		select {
		case p := <-sub.Progress:
			last = p
			count++
		default:
			goto done
		}
	}
done:
	if count != eventBufferSize {
		t.Errorf("received %d events, want %d", count, eventBufferSize)
	}
	want := time.Duration(eventBufferSize+4) * time.Second
	if last.Position != want {
		t.Errorf("last Position = %v, want %v", last.Position, want)
	}
}
