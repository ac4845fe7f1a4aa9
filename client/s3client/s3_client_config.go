package s3client

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joy-dx/gopresign/dto"
)

const ClientS3Ref dto.ClientType = "client.s3"

type Middleware func(ctx context.Context, req *S3Request) error

// S3ClientConfig defines the static properties for an S3 client instance.
type S3ClientConfig struct {
	Region      dto.Region
	Credentials aws.CredentialsProvider
	S3          dto.S3Config
	Middlewares []Middleware
	// DefaultExpires applies when a presign call carries no explicit
	// expiry. Zero means the 3600s default.
	DefaultExpires time.Duration
	// OnAddressing observes every hostname resolution, including the
	// silent Auto downgrade to path style. Optional; never changes the
	// resolution outcome.
	OnAddressing func(dto.AddressingEvent)
}

// Default config helpers
func DefaultS3ClientConfig(region dto.Region) S3ClientConfig {
	return S3ClientConfig{Region: region, Middlewares: []Middleware{}}
}

func (c *S3ClientConfig) WithMiddleware(m ...Middleware) *S3ClientConfig {
	c.Middlewares = append(c.Middlewares, m...)
	return c
}

func (c *S3ClientConfig) WithCredentials(p aws.CredentialsProvider) *S3ClientConfig {
	c.Credentials = p
	return c
}

func (c *S3ClientConfig) WithAddressingStyle(s dto.AddressingStyle) *S3ClientConfig {
	c.S3.AddressingStyle = s
	return c
}

func (c *S3ClientConfig) WithDefaultExpires(d time.Duration) *S3ClientConfig {
	c.DefaultExpires = d
	return c
}

func (c *S3ClientConfig) WithOnAddressing(fn func(dto.AddressingEvent)) *S3ClientConfig {
	c.OnAddressing = fn
	return c
}
