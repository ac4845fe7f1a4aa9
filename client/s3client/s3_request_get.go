package s3client

import (
	"bytes"
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joy-dx/gopresign/dto"
	"github.com/joy-dx/gopresign/utils"
	"github.com/klauspost/compress/gzip"
)

func (c *S3Client) doGet(ctx context.Context, r *S3Request) (dto.Response, error) {
	out, err := c.client.GetObject(ctx, r.GetInput)
	if err != nil {
		return dto.Response{}, classifySDKError(err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return dto.Response{}, dto.FromDispatch[*dto.ServiceError](dto.NewHTTPDispatchError(err))
	}

	headers := utils.MetadataToHeader(out.Metadata)
	if v := aws.ToString(out.ContentType); v != "" {
		headers.Set("Content-Type", v)
	}
	if v := aws.ToString(out.ETag); v != "" {
		headers.Set("ETag", v)
	}

	// Transparent decompression for objects stored gzip-encoded.
	if aws.ToString(out.ContentEncoding) == "gzip" {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return dto.Response{}, dto.FromDispatch[*dto.ServiceError](dto.NewHTTPDispatchError(err))
		}
		defer gz.Close()
		if data, err = io.ReadAll(gz); err != nil {
			return dto.Response{}, dto.FromDispatch[*dto.ServiceError](dto.NewHTTPDispatchError(err))
		}
	} else if v := aws.ToString(out.ContentEncoding); v != "" {
		headers.Set("Content-Encoding", v)
	}

	return dto.Response{
		StatusCode: 200,
		Body:       data,
		Headers:    headers,
	}, nil
}
