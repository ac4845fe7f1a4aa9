package s3client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joy-dx/gopresign/dto"
)

// S3RequestConfig defines the structure of an S3 request operation.
// Exactly one typed request must be set, matching Operation.
type S3RequestConfig struct {
	Operation string // "get", "put", "delete", "upload-part", "list"

	Get        *dto.GetObjectRequest
	Put        *dto.PutObjectRequest
	Delete     *dto.DeleteObjectRequest
	UploadPart *dto.UploadPartRequest
	List       *dto.ListObjectsRequest

	// Presign applies only to PresignRequest dispatch. Nil inherits the
	// client's configured addressing style and default expiry.
	Presign *dto.PreSignedRequestOption
}

func (c *S3RequestConfig) Ref() dto.ClientType {
	return ClientS3Ref
}

type S3Request struct {
	Operation string

	Get        *dto.GetObjectRequest
	Put        *dto.PutObjectRequest
	Delete     *dto.DeleteObjectRequest
	UploadPart *dto.UploadPartRequest
	List       *dto.ListObjectsRequest

	Presign *dto.PreSignedRequestOption

	// Deterministic prepared AWS inputs (built after middleware)
	GetInput        *s3.GetObjectInput
	PutInput        *s3.PutObjectInput
	DeleteInput     *s3.DeleteObjectInput
	UploadPartInput *s3.UploadPartInput
	ListInput       *s3.ListObjectsV2Input
}

// NewRequest deep copies the config so middleware mutations never leak
// back into it across retries.
func (c *S3RequestConfig) NewRequest(ctx context.Context) (any, error) {
	r := &S3Request{Operation: c.Operation}

	if c.Get != nil {
		r.Get = c.Get.Clone()
	}
	if c.Put != nil {
		r.Put = c.Put.Clone()
	}
	if c.Delete != nil {
		r.Delete = c.Delete.Clone()
	}
	if c.UploadPart != nil {
		r.UploadPart = c.UploadPart.Clone()
	}
	if c.List != nil {
		r.List = c.List.Clone()
	}
	if c.Presign != nil {
		opt := *c.Presign
		r.Presign = &opt
	}

	return r, nil
}

// validate checks that the typed request matching Operation is present
// and carries a target.
func (r *S3Request) validate() error {
	bucket, key, needKey, err := r.target()
	if err != nil {
		return err
	}
	if bucket == "" {
		return dto.NewValidation[*dto.ServiceError]("bucket is required")
	}
	if needKey && key == "" {
		return dto.NewValidation[*dto.ServiceError]("key is required")
	}
	if r.Operation == "upload-part" && r.UploadPart.UploadID == "" {
		return dto.NewValidation[*dto.ServiceError]("uploadId is required")
	}
	return nil
}

func (r *S3Request) target() (bucket, key string, needKey bool, err error) {
	switch r.Operation {
	case "get":
		if r.Get == nil {
			return "", "", false, dto.NewValidation[*dto.ServiceError]("get request is nil")
		}
		return r.Get.Bucket, r.Get.Key, true, nil
	case "put":
		if r.Put == nil {
			return "", "", false, dto.NewValidation[*dto.ServiceError]("put request is nil")
		}
		return r.Put.Bucket, r.Put.Key, true, nil
	case "delete":
		if r.Delete == nil {
			return "", "", false, dto.NewValidation[*dto.ServiceError]("delete request is nil")
		}
		return r.Delete.Bucket, r.Delete.Key, true, nil
	case "upload-part":
		if r.UploadPart == nil {
			return "", "", false, dto.NewValidation[*dto.ServiceError]("upload-part request is nil")
		}
		return r.UploadPart.Bucket, r.UploadPart.Key, true, nil
	case "list":
		if r.List == nil {
			return "", "", false, dto.NewValidation[*dto.ServiceError]("list request is nil")
		}
		return r.List.Bucket, "", false, nil
	default:
		return "", "", false, dto.NewValidation[*dto.ServiceError]("unknown operation: " + r.Operation)
	}
}
