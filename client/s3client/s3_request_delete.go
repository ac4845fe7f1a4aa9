package s3client

import (
	"context"

	"github.com/joy-dx/gopresign/dto"
)

func (c *S3Client) doDelete(ctx context.Context, r *S3Request) (dto.Response, error) {
	if _, err := c.client.DeleteObject(ctx, r.DeleteInput); err != nil {
		return dto.Response{}, classifySDKError(err)
	}
	return dto.Response{StatusCode: 204}, nil
}
