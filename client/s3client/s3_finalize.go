package s3client

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/joy-dx/gopresign/dto"
)

// Finalize builds the deterministic AWS SDK input struct for the operation.
// Call this exactly once after middleware has run and before executing.
func (r *S3Request) Finalize() error {
	// Clear any previous prepared state (in case caller reuses r incorrectly).
	r.GetInput = nil
	r.PutInput = nil
	r.DeleteInput = nil
	r.UploadPartInput = nil
	r.ListInput = nil

	switch r.Operation {
	case "get":
		in := &s3.GetObjectInput{
			Bucket: aws.String(r.Get.Bucket),
			Key:    aws.String(r.Get.Key),

			Range:       r.Get.Range,
			IfMatch:     r.Get.IfMatch,
			IfNoneMatch: r.Get.IfNoneMatch,

			SSECustomerAlgorithm: r.Get.SSECustomerAlgorithm,
			SSECustomerKey:       r.Get.SSECustomerKey,
			SSECustomerKeyMD5:    r.Get.SSECustomerKeyMD5,

			PartNumber:                 r.Get.PartNumber,
			ResponseContentType:        r.Get.ResponseContentType,
			ResponseContentLanguage:    r.Get.ResponseContentLanguage,
			ResponseCacheControl:       r.Get.ResponseCacheControl,
			ResponseContentDisposition: r.Get.ResponseContentDisposition,
			ResponseContentEncoding:    r.Get.ResponseContentEncoding,
			VersionId:                  r.Get.VersionID,
		}
		var err error
		if in.IfModifiedSince, err = parseHTTPDate(r.Get.IfModifiedSince); err != nil {
			return err
		}
		if in.IfUnmodifiedSince, err = parseHTTPDate(r.Get.IfUnmodifiedSince); err != nil {
			return err
		}
		if in.ResponseExpires, err = parseHTTPDate(r.Get.ResponseExpires); err != nil {
			return err
		}
		r.GetInput = in
		return nil

	case "put":
		in := &s3.PutObjectInput{
			Bucket: aws.String(r.Put.Bucket),
			Key:    aws.String(r.Put.Key),
			Body:   bytes.NewReader(r.Put.Body),

			CacheControl:            r.Put.CacheControl,
			ContentDisposition:      r.Put.ContentDisposition,
			ContentEncoding:         r.Put.ContentEncoding,
			ContentLength:           r.Put.ContentLength,
			ContentMD5:              r.Put.ContentMD5,
			ContentType:             r.Put.ContentType,
			Tagging:                 r.Put.Tagging,
			WebsiteRedirectLocation: r.Put.WebsiteRedirectLocation,

			GrantRead:        r.Put.GrantRead,
			GrantReadACP:     r.Put.GrantReadACP,
			GrantWriteACP:    r.Put.GrantWriteACP,
			GrantFullControl: r.Put.GrantFullControl,

			SSEKMSKeyId:          r.Put.SSEKMSKeyID,
			SSECustomerAlgorithm: r.Put.SSECustomerAlgorithm,
			SSECustomerKey:       r.Put.SSECustomerKey,
			SSECustomerKeyMD5:    r.Put.SSECustomerKeyMD5,
		}
		if r.Put.StorageClass != nil {
			in.StorageClass = types.StorageClass(*r.Put.StorageClass)
		}
		if r.Put.ACL != nil {
			in.ACL = types.ObjectCannedACL(*r.Put.ACL)
		}
		if r.Put.ServerSideEncryption != nil {
			in.ServerSideEncryption = types.ServerSideEncryption(*r.Put.ServerSideEncryption)
		}
		var err error
		if in.Expires, err = parseHTTPDate(r.Put.Expires); err != nil {
			return err
		}
		if len(r.Put.Metadata) > 0 {
			md := make(map[string]string, len(r.Put.Metadata))
			for k, v := range r.Put.Metadata {
				md[k] = v
			}
			in.Metadata = md
		}
		r.PutInput = in
		return nil

	case "delete":
		r.DeleteInput = &s3.DeleteObjectInput{
			Bucket:    aws.String(r.Delete.Bucket),
			Key:       aws.String(r.Delete.Key),
			MFA:       r.Delete.MFA,
			VersionId: r.Delete.VersionID,
		}
		return nil

	case "upload-part":
		in := &s3.UploadPartInput{
			Bucket:     aws.String(r.UploadPart.Bucket),
			Key:        aws.String(r.UploadPart.Key),
			PartNumber: aws.Int32(r.UploadPart.PartNumber),
			UploadId:   aws.String(r.UploadPart.UploadID),
			Body:       bytes.NewReader(r.UploadPart.Body),

			ContentLength: r.UploadPart.ContentLength,
			ContentMD5:    r.UploadPart.ContentMD5,

			SSECustomerAlgorithm: r.UploadPart.SSECustomerAlgorithm,
			SSECustomerKey:       r.UploadPart.SSECustomerKey,
			SSECustomerKeyMD5:    r.UploadPart.SSECustomerKeyMD5,
		}
		if r.UploadPart.RequestPayer != nil {
			in.RequestPayer = types.RequestPayer(*r.UploadPart.RequestPayer)
		}
		r.UploadPartInput = in
		return nil

	case "list":
		r.ListInput = &s3.ListObjectsV2Input{
			Bucket:  aws.String(r.List.Bucket),
			Prefix:  r.List.Prefix,
			MaxKeys: r.List.MaxKeys,
		}
		return nil

	default:
		return dto.NewValidation[*dto.ServiceError](fmt.Sprintf("unsupported s3 operation: %s", r.Operation))
	}
}

// parseHTTPDate converts an RFC 7231 date string into the *time.Time
// the SDK inputs expect. Request values keep dates as strings so the
// presign tables can emit them verbatim.
func parseHTTPDate(v *string) (*time.Time, error) {
	if v == nil {
		return nil, nil
	}
	t, err := time.Parse(http.TimeFormat, *v)
	if err != nil {
		return nil, dto.NewValidation[*dto.ServiceError](fmt.Sprintf("invalid http date %q: %v", *v, err))
	}
	return &t, nil
}
