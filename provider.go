package gopresign

import (
	"sync"

	"github.com/joy-dx/gopresign/config"
	"github.com/joy-dx/gopresign/dto"
	"github.com/joy-dx/gopresign/relays"
	"github.com/joy-dx/lockablemap"
)

var (
	service     *PresignSvc
	serviceOnce sync.Once
)

func ProvidePresignSvc(cfg *config.PresignSvcConfig) *PresignSvc {
	serviceOnce.Do(func() {
		service = &PresignSvc{
			cfg:               cfg,
			relay:             cfg.Relay(),
			listenersByBucket: make(map[string][]chan dto.PresignNotification),
			presignState:      *lockablemap.NewLockableMap[string, dto.PresignNotification](),
			clients:           make(map[string]dto.ClientInterface),
		}
		cfg.Relay().Debug(relays.RlySvcLog{Msg: "Presign service started"})
	})
	return service
}
