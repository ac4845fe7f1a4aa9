package config

import (
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joy-dx/gopresign/dto"
	relayDTO "github.com/joy-dx/relay/dto"
)

// PresignSvcConfig Service-wide settings shared by every registered
// client. Built with the With* helpers; the zero value works but has no
// relay and no region.
type PresignSvcConfig struct {
	relay relayDTO.RelayInterface

	Region      dto.Region
	Credentials aws.CredentialsProvider
	Addressing  dto.S3Config

	// RequestTimeout bounds each executed request when the request
	// config itself carries no timeout.
	RequestTimeout time.Duration
	// DefaultExpires applies to presigned URLs generated without a
	// per-call expiry.
	DefaultExpires time.Duration
}

func DefaultPresignSvcConfig() PresignSvcConfig {
	return PresignSvcConfig{
		Region:         dto.RegionNamed("us-east-1"),
		RequestTimeout: 20 * time.Second,
		DefaultExpires: 3600 * time.Second,
	}
}

func (c *PresignSvcConfig) Relay() relayDTO.RelayInterface {
	return c.relay
}

func (c *PresignSvcConfig) WithRelay(relay relayDTO.RelayInterface) *PresignSvcConfig {
	c.relay = relay
	return c
}

func (c *PresignSvcConfig) WithRegion(region dto.Region) *PresignSvcConfig {
	c.Region = region
	return c
}

func (c *PresignSvcConfig) WithCredentials(p aws.CredentialsProvider) *PresignSvcConfig {
	c.Credentials = p
	return c
}

func (c *PresignSvcConfig) WithAddressingStyle(s dto.AddressingStyle) *PresignSvcConfig {
	c.Addressing.AddressingStyle = s
	return c
}

func (c *PresignSvcConfig) WithRequestTimeout(d time.Duration) *PresignSvcConfig {
	c.RequestTimeout = d
	return c
}

func (c *PresignSvcConfig) WithDefaultExpires(d time.Duration) *PresignSvcConfig {
	c.DefaultExpires = d
	return c
}
