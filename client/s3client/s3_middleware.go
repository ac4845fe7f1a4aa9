package s3client

import (
	"context"
	"fmt"
	"strings"
)

// StaticMetadataMiddleware adds default metadata to each S3 put operation.
func StaticMetadataMiddleware(meta map[string]string) Middleware {
	return func(ctx context.Context, r *S3Request) error {
		if r.Operation != "put" || r.Put == nil {
			return nil
		}
		if r.Put.Metadata == nil {
			r.Put.Metadata = make(map[string]string, len(meta))
		}
		for k, v := range meta {
			r.Put.Metadata[k] = v
		}
		return nil
	}
}

func LoggingMiddleware(logger func(msg string)) Middleware {
	return func(ctx context.Context, r *S3Request) error {
		bucket, key, _, err := r.target()
		if err != nil {
			return nil
		}
		logger(fmt.Sprintf(
			"[S3] %s s3://%s/%s",
			strings.ToUpper(r.Operation),
			bucket,
			key,
		))
		return nil
	}
}
