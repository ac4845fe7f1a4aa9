package gopresign

import (
	"github.com/joy-dx/gopresign/dto"
)

// publishPresignUpdate is the unified notification function
func (s *PresignSvc) publishPresignUpdate(state dto.PresignNotification) {
	s.presignState.Set(state.Bucket+"/"+state.Key, state)

	s.muListeners.Lock()
	listeners := append([]chan dto.PresignNotification(nil), s.listenersByBucket[state.Bucket]...)
	s.muListeners.Unlock()

	for _, ch := range listeners {
		// Every presign outcome is terminal; ensure delivery.
		// Avoid deadlock: do NOT hold muListeners while sending.
		select {
		case ch <- state:
		default:
			// Buffer full: fall back to blocking send in a goroutine.
			// This guarantees delivery without stalling the publisher.
			go func(c chan dto.PresignNotification, n dto.PresignNotification) {
				// Best effort: if unsub closed the channel, recover.
				defer func() { _ = recover() }()
				c <- n
			}(ch, state)
		}
	}
}
