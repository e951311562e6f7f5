package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
type Subscription struct {
	Progress      <-chan Progress
	VolumeChanged <-chan VolumeChange
	MetadataReady <-chan MetadataReady
	CanPlay       <-chan CanPlay
	Ended         <-chan Ended
	Error         <-chan ErrorEvent
	Done          <-chan struct{}

	// Internal write channels
	progressCh chan Progress
	volumeCh   chan VolumeChange
	metadataCh chan MetadataReady
	canPlayCh  chan CanPlay
	endedCh    chan Ended
	errorCh    chan ErrorEvent
	doneCh     chan struct{}
}

// newSubscription creates a new subscription with buffered channels.
func newSubscription() *Subscription {
	s := &Subscription{
		progressCh: make(chan Progress, eventBufferSize),
		volumeCh:   make(chan VolumeChange, eventBufferSize),
		metadataCh: make(chan MetadataReady, eventBufferSize),
		canPlayCh:  make(chan CanPlay, eventBufferSize),
		endedCh:    make(chan Ended, eventBufferSize),
		errorCh:    make(chan ErrorEvent, eventBufferSize),
		doneCh:     make(chan struct{}),
	}
	s.Progress = s.progressCh
	s.VolumeChanged = s.volumeCh
	s.MetadataReady = s.metadataCh
	s.CanPlay = s.canPlayCh
	s.Ended = s.endedCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

// close signals subscribers to stop by closing doneCh.
func (s *Subscription) close() {
	close(s.doneCh)
}

// Progress events are periodic, so when the buffer is full the oldest one is
// dropped to keep the newest position.
func (s *Subscription) sendProgress(e Progress) {
	select {
	case s.progressCh <- e:
		return
	default:
	}
	select {
	case <-s.progressCh:
	default:
	}
	select {
	case s.progressCh <- e:
	default:
	}
}

func (s *Subscription) sendVolume(e VolumeChange) {
	select {
	case s.volumeCh <- e:
	default:
		// Drop if buffer full
	}
}

func (s *Subscription) sendMetadata(e MetadataReady) {
	select {
	case s.metadataCh <- e:
	default:
	}
}

func (s *Subscription) sendCanPlay(e CanPlay) {
	select {
	case s.canPlayCh <- e:
	default:
	}
}

func (s *Subscription) sendEnded(e Ended) {
	select {
	case s.endedCh <- e:
	default:
	}
}

func (s *Subscription) sendError(e ErrorEvent) {
	select {
	case s.errorCh <- e:
	default:
	}
}
