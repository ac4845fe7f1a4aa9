package gopresign

import (
	"sync"

	"github.com/joy-dx/gopresign/config"
	"github.com/joy-dx/gopresign/dto"
	"github.com/joy-dx/lockablemap"
	relayDTO "github.com/joy-dx/relay/dto"
)

// PresignSvc Front door for the registered storage clients: builds
// pre-signed URLs, executes requests and fans presign notifications out
// to bucket listeners.
type PresignSvc struct {
	cfg               *config.PresignSvcConfig
	relay             relayDTO.RelayInterface
	clients           map[string]dto.ClientInterface
	presignState      lockablemap.LockableMap[string, dto.PresignNotification]
	muListeners       sync.Mutex
	listenersByBucket map[string][]chan dto.PresignNotification
}

func (s *PresignSvc) RegisterClient(ref string, client dto.ClientInterface) {
	s.clients[ref] = client
}

// PresignListener returns a channel of presign updates for a particular bucket
func (s *PresignSvc) PresignListener(bucket string) (<-chan dto.PresignNotification, func()) {
	s.muListeners.Lock()
	defer s.muListeners.Unlock()

	ch := make(chan dto.PresignNotification, 10)
	s.listenersByBucket[bucket] = append(s.listenersByBucket[bucket], ch)

	unsub := func() {
		s.muListeners.Lock()
		defer s.muListeners.Unlock()

		chans := s.listenersByBucket[bucket]
		out := chans[:0]
		for _, c := range chans {
			if c != ch {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			delete(s.listenersByBucket, bucket)
		} else {
			s.listenersByBucket[bucket] = out
		}
		close(ch)
	}

	return ch, unsub
}

// PresignListenerClose closes all channels for a given bucket manually
func (s *PresignSvc) PresignListenerClose(bucket string) {
	s.muListeners.Lock()
	defer s.muListeners.Unlock()
	if chans, ok := s.listenersByBucket[bucket]; ok {
		for _, c := range chans {
			close(c)
		}
		delete(s.listenersByBucket, bucket)
	}
}
