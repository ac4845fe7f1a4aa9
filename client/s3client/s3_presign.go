package s3client

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/joy-dx/gopresign/dto"
	"github.com/joy-dx/gopresign/utils"
)

const (
	s3ServiceName   = "s3"
	unsignedPayload = "UNSIGNED-PAYLOAD"
	expiresParam    = "X-Amz-Expires"
)

// HTTPPresigner is the external signer capability: a SigV4-compatible
// canonicalization over the request's method, path, headers and query
// parameters, deterministic for identical inputs and timestamp.
// *v4.Signer satisfies it.
type HTTPPresigner interface {
	PresignHTTP(
		ctx context.Context, credentials aws.Credentials, r *http.Request,
		payloadHash string, service string, region string, signingTime time.Time,
		optFns ...func(*v4.SignerOptions),
	) (url string, signedHeader http.Header, err error)
}

// PresignGetObject produces a time-limited GET URL for an object.
// http://docs.aws.amazon.com/AmazonS3/latest/API/sigv4-query-string-auth.html
func (c *S3Client) PresignGetObject(ctx context.Context, in *dto.GetObjectRequest, opt *dto.PreSignedRequestOption) (string, error) {
	requestURI, hostname, err := c.buildRequestURIAndHostname(c.styleFor(opt), in.Bucket, in.Key)
	if err != nil {
		return "", err
	}

	request := NewSignedRequest(http.MethodGet, s3ServiceName, c.cfg.Region, requestURI)
	request.applyFields(getObjectFields(in))
	request.SetHostname(hostname)

	return c.presignURL(ctx, request, c.expiresFor(opt), false)
}

// PresignPutObject produces a time-limited PUT URL for an object.
func (c *S3Client) PresignPutObject(ctx context.Context, in *dto.PutObjectRequest, opt *dto.PreSignedRequestOption) (string, error) {
	requestURI, hostname, err := c.buildRequestURIAndHostname(c.styleFor(opt), in.Bucket, in.Key)
	if err != nil {
		return "", err
	}

	request := NewSignedRequest(http.MethodPut, s3ServiceName, c.cfg.Region, requestURI)
	request.applyFields(putObjectFields(in))
	for name, value := range in.Metadata {
		request.AddHeader(utils.MetadataHeaderPrefix+name, value)
	}
	request.SetHostname(hostname)

	return c.presignURL(ctx, request, c.expiresFor(opt), false)
}

// PresignDeleteObject produces a time-limited DELETE URL for an object.
func (c *S3Client) PresignDeleteObject(ctx context.Context, in *dto.DeleteObjectRequest, opt *dto.PreSignedRequestOption) (string, error) {
	requestURI, hostname, err := c.buildRequestURIAndHostname(c.styleFor(opt), in.Bucket, in.Key)
	if err != nil {
		return "", err
	}

	request := NewSignedRequest(http.MethodDelete, s3ServiceName, c.cfg.Region, requestURI)
	request.applyFields(deleteObjectFields(in))
	request.SetHostname(hostname)

	return c.presignURL(ctx, request, c.expiresFor(opt), false)
}

// PresignUploadPart produces a time-limited PUT URL for one part of a
// multipart upload. partNumber and uploadId are always emitted.
func (c *S3Client) PresignUploadPart(ctx context.Context, in *dto.UploadPartRequest, opt *dto.PreSignedRequestOption) (string, error) {
	requestURI, hostname, err := c.buildRequestURIAndHostname(c.styleFor(opt), in.Bucket, in.Key)
	if err != nil {
		return "", err
	}

	request := NewSignedRequest(http.MethodPut, s3ServiceName, c.cfg.Region, requestURI)
	request.AddParam("partNumber", strconv.FormatInt(int64(in.PartNumber), 10))
	request.AddParam("uploadId", in.UploadID)
	request.applyFields(uploadPartFields(in))
	request.SetHostname(hostname)

	return c.presignURL(ctx, request, c.expiresFor(opt), false)
}

// styleFor A non-nil per-call option is authoritative; otherwise the
// client-wide policy applies.
func (c *S3Client) styleFor(opt *dto.PreSignedRequestOption) dto.AddressingStyle {
	if opt != nil {
		return opt.AddressingStyle
	}
	return c.cfg.S3.AddressingStyle
}

func (c *S3Client) expiresFor(opt *dto.PreSignedRequestOption) time.Duration {
	if opt != nil && opt.ExpiresIn > 0 {
		return opt.ExpiresIn
	}
	if c.cfg.DefaultExpires > 0 {
		return c.cfg.DefaultExpires
	}
	return dto.DefaultPreSignedRequestOption().ExpiresIn
}

// presignURL resolves credentials and delegates to the signer. Signer
// failures pass through unchanged; credential resolution failures
// surface as *dto.CredentialsError.
func (c *S3Client) presignURL(ctx context.Context, request *SignedRequest, expiresIn time.Duration, requireBodyHash bool) (string, error) {
	if c.cfg.Credentials == nil {
		return "", dto.NewCredentialsError("no credentials provider configured")
	}
	credentials, err := c.cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return "", dto.WrapCredentialsError(err)
	}

	httpReq, err := request.HTTPRequest()
	if err != nil {
		return "", err
	}

	query := httpReq.URL.Query()
	query.Set(expiresParam, strconv.FormatInt(int64(expiresIn/time.Second), 10))
	httpReq.URL.RawQuery = query.Encode()

	payloadHash := unsignedPayload
	if requireBodyHash {
		payloadHash = utils.Sha256SumBytes(nil)
	}

	signedURL, _, err := c.signer.PresignHTTP(
		ctx, credentials, httpReq,
		payloadHash, request.Service, request.Region.Name(), time.Now().UTC(),
		func(o *v4.SignerOptions) {
			// S3 signs the raw path; double-escaping breaks keys with
			// reserved characters.
			o.DisableURIPathEscaping = true
		},
	)
	if err != nil {
		return "", err
	}
	return signedURL, nil
}
