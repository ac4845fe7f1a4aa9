package dto

import (
	"context"
)

type SvcInterface interface {
	Hydrate(ctx context.Context) error
	State() *SvcState
	RegisterClient(ref string, client ClientInterface)
	Presign(ctx context.Context, cfg *RequestConfig) (string, error)
	Execute(ctx context.Context, cfg *RequestConfig) (Response, error)
	ExecuteWithRetry(ctx context.Context, cfg *RequestConfig) (Response, error)
}

// ClientInterface abstracts a registered storage client. PresignRequest
// produces a time-limited URL without network I/O; ProcessRequest
// executes the operation against the endpoint.
type ClientInterface interface {
	Ref() string
	Type() ClientType
	PresignRequest(ctx context.Context, cfg *RequestConfig) (string, error)
	ProcessRequest(ctx context.Context, cfg *RequestConfig) (Response, error)
}
