package gopresign

import (
	"context"
	"errors"

	"github.com/joy-dx/gopresign/client/s3client"
	"github.com/joy-dx/gopresign/dto"
	"github.com/joy-dx/gopresign/relays"
)

func (s *PresignSvc) State() *dto.SvcState {

	return &dto.SvcState{
		Region:         s.cfg.Region.Name(),
		RequestTimeout: s.cfg.RequestTimeout,
		DefaultExpires: s.cfg.DefaultExpires,
		Addressing:     s.cfg.Addressing.AddressingStyle.String(),
		PresignsStatus: s.presignState.GetAll(),
	}
}

func (s *PresignSvc) Hydrate(ctx context.Context) error {
	if s.cfg == nil {
		return errors.New("no presign config")
	}
	if s.relay == nil {
		return errors.New("no relay implementation")
	}

	defaultClientCfg := s3client.DefaultS3ClientConfig(s.cfg.Region)
	defaultClientCfg.WithCredentials(s.cfg.Credentials).
		WithAddressingStyle(s.cfg.Addressing.AddressingStyle).
		WithDefaultExpires(s.cfg.DefaultExpires).
		WithOnAddressing(func(ev dto.AddressingEvent) {
			s.relay.Debug(relays.RlyAddressing{
				Bucket:     ev.Bucket,
				Hostname:   ev.Hostname,
				Style:      ev.Style,
				Virtual:    ev.Virtual,
				Downgraded: ev.Downgraded,
			})
		})

	defaultClient, err := s3client.NewS3Client(dto.DEFAULT_CLIENT_REF, &defaultClientCfg)
	if err != nil {
		return err
	}
	s.clients[dto.DEFAULT_CLIENT_REF] = defaultClient

	return nil
}
