package s3client

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joy-dx/gopresign/dto"
)

func (c *S3Client) doPut(ctx context.Context, r *S3Request) (dto.Response, error) {
	out, err := c.client.PutObject(ctx, r.PutInput)
	if err != nil {
		return dto.Response{}, classifySDKError(err)
	}

	headers := http.Header{}
	if v := aws.ToString(out.ETag); v != "" {
		headers.Set("ETag", v)
	}
	return dto.Response{StatusCode: 200, Headers: headers}, nil
}
