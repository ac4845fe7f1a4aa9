package s3client

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joy-dx/gopresign/dto"
)

// s3API This internal interface abstracts the s3 client for easier testing
type s3API interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	UploadPart(ctx context.Context, params *s3.UploadPartInput, optFns ...func(*s3.Options)) (*s3.UploadPartOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

type S3Client struct {
	Client dto.Client
	cfg    *S3ClientConfig
	client s3API
	signer HTTPPresigner
}

func NewS3Client(ref string, cfg *S3ClientConfig) (*S3Client, error) {
	loadOpts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region.Name()),
	}
	if cfg.Credentials != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(cfg.Credentials))
	}

	awsCfg, err := config.LoadDefaultConfig(context.Background(), loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	if cfg.Credentials == nil {
		cfg.Credentials = awsCfg.Credentials
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.S3.AddressingStyle == dto.AddressingPath
		if cfg.Region.IsCustom() {
			o.BaseEndpoint = aws.String(cfg.Region.Endpoint())
		}
	})

	return &S3Client{
		cfg:    cfg,
		client: client,
		signer: v4.NewSigner(),
		Client: dto.Client{
			Name:        "S3 Client",
			Ref:         ref,
			ClientType:  ClientS3Ref,
			Description: "Builds pre-signed S3 URLs and performs basic S3 operations (get, put, delete, upload-part, list)",
		},
	}, nil
}

func (c *S3Client) Ref() string {
	return c.Client.Ref
}

func (c *S3Client) Type() dto.ClientType {
	return ClientS3Ref
}

// PresignRequest builds a pre-signed URL for the configured operation.
// No network I/O happens here; the only failures this layer itself can
// produce are validation, DNS-name and credential errors.
func (c *S3Client) PresignRequest(ctx context.Context, reqCfg *dto.RequestConfig) (string, error) {
	r, err := c.prepareRequest(ctx, reqCfg)
	if err != nil {
		return "", err
	}

	switch r.Operation {
	case "get":
		return c.PresignGetObject(ctx, r.Get, r.Presign)
	case "put":
		return c.PresignPutObject(ctx, r.Put, r.Presign)
	case "delete":
		return c.PresignDeleteObject(ctx, r.Delete, r.Presign)
	case "upload-part":
		return c.PresignUploadPart(ctx, r.UploadPart, r.Presign)
	default:
		return "", dto.NewValidation[*dto.ServiceError](fmt.Sprintf("unsupported presign operation: %s", r.Operation))
	}
}

// ProcessRequest executes the configured operation against the
// endpoint, lifting every failure into the error algebra.
func (c *S3Client) ProcessRequest(ctx context.Context, reqCfg *dto.RequestConfig) (dto.Response, error) {
	r, err := c.prepareRequest(ctx, reqCfg)
	if err != nil {
		return dto.Response{}, err
	}

	if err := r.Finalize(); err != nil {
		return dto.Response{}, err
	}

	// Resolve credentials up front so a signing prerequisite failure is
	// distinguishable from a dispatch failure.
	if _, err := c.cfg.Credentials.Retrieve(ctx); err != nil {
		return dto.Response{}, dto.FromSignAndDispatch[*dto.ServiceError](&dto.SignAndDispatchError{
			Credentials: dto.WrapCredentialsError(err),
		})
	}

	switch r.Operation {
	case "get":
		return c.doGet(ctx, r)
	case "put":
		return c.doPut(ctx, r)
	case "delete":
		return c.doDelete(ctx, r)
	case "upload-part":
		return c.doUploadPart(ctx, r)
	case "list":
		return c.doList(ctx, r)
	default:
		return dto.Response{}, dto.NewValidation[*dto.ServiceError](fmt.Sprintf("unsupported s3 operation: %s", r.Operation))
	}
}

// prepareRequest builds the request copy, runs middleware and validates
// the target.
func (c *S3Client) prepareRequest(ctx context.Context, reqCfg *dto.RequestConfig) (*S3Request, error) {
	cfg, ok := reqCfg.ReqConfig.(*S3RequestConfig)
	if !ok {
		return nil, dto.NewValidation[*dto.ServiceError]("problem casting to s3requestconfig")
	}

	reqAny, err := cfg.NewRequest(ctx)
	if err != nil {
		return nil, dto.NewValidation[*dto.ServiceError](fmt.Sprintf("build request: %v", err))
	}
	r, ok := reqAny.(*S3Request)
	if !ok {
		return nil, dto.NewValidation[*dto.ServiceError]("problem casting built request to s3request")
	}

	for _, mw := range c.cfg.Middlewares {
		if err := mw(ctx, r); err != nil {
			return nil, dto.NewValidation[*dto.ServiceError](fmt.Sprintf("middleware aborted: %v", err))
		}
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}
