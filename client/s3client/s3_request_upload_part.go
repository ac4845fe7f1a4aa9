package s3client

import (
	"context"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joy-dx/gopresign/dto"
)

func (c *S3Client) doUploadPart(ctx context.Context, r *S3Request) (dto.Response, error) {
	out, err := c.client.UploadPart(ctx, r.UploadPartInput)
	if err != nil {
		return dto.Response{}, classifySDKError(err)
	}

	// The part ETag is required later by CompleteMultipartUpload.
	headers := http.Header{}
	if v := aws.ToString(out.ETag); v != "" {
		headers.Set("ETag", v)
	}
	return dto.Response{StatusCode: 200, Headers: headers}, nil
}
