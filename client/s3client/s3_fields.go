package s3client

import (
	"strconv"

	"github.com/joy-dx/gopresign/dto"
)

// The per-operation field tables below replace hand-written header and
// parameter plumbing with data: every optional request field maps to
// exactly one fixed AWS header or query-parameter name, and absent
// fields emit nothing. The names must reproduce AWS's documented set
// exactly, including the fields deliberately left out because the
// request values carry no counterpart for them.

type fieldKind uint8

const (
	emitHeader fieldKind = iota
	emitParam
)

type field struct {
	kind  fieldKind
	name  string
	value *string
}

func (r *SignedRequest) applyFields(fields []field) {
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		switch f.kind {
		case emitHeader:
			r.AddHeader(f.name, *f.value)
		case emitParam:
			r.AddParam(f.name, *f.value)
		}
	}
}

func int32String(v *int32) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatInt(int64(*v), 10)
	return &s
}

func int64String(v *int64) *string {
	if v == nil {
		return nil
	}
	s := strconv.FormatInt(*v, 10)
	return &s
}

// https://docs.aws.amazon.com/AmazonS3/latest/API/RESTObjectGET.html
func getObjectFields(in *dto.GetObjectRequest) []field {
	return []field{
		{emitHeader, "Range", in.Range},
		{emitHeader, "If-Modified-Since", in.IfModifiedSince},
		{emitHeader, "If-Unmodified-Since", in.IfUnmodifiedSince},
		{emitHeader, "If-Match", in.IfMatch},
		{emitHeader, "If-None-Match", in.IfNoneMatch},
		{emitHeader, "x-amz-server-side-encryption-customer-algorithm", in.SSECustomerAlgorithm},
		{emitHeader, "x-amz-server-side-encryption-customer-key", in.SSECustomerKey},
		{emitHeader, "x-amz-server-side-encryption-customer-key-MD5", in.SSECustomerKeyMD5},

		{emitParam, "partNumber", int32String(in.PartNumber)},
		{emitParam, "response-content-type", in.ResponseContentType},
		{emitParam, "response-content-language", in.ResponseContentLanguage},
		{emitParam, "response-expires", in.ResponseExpires},
		{emitParam, "response-cache-control", in.ResponseCacheControl},
		{emitParam, "response-content-disposition", in.ResponseContentDisposition},
		{emitParam, "response-content-encoding", in.ResponseContentEncoding},
		{emitParam, "versionId", in.VersionID},
	}
}

// https://docs.aws.amazon.com/AmazonS3/latest/API/RESTObjectPUT.html
func putObjectFields(in *dto.PutObjectRequest) []field {
	return []field{
		{emitHeader, "Cache-Control", in.CacheControl},
		{emitHeader, "Content-Disposition", in.ContentDisposition},
		{emitHeader, "Content-Encoding", in.ContentEncoding},
		{emitHeader, "Content-Length", int64String(in.ContentLength)},
		{emitHeader, "Content-MD5", in.ContentMD5},
		{emitHeader, "Content-Type", in.ContentType},
		// The AWS document lists an Expect header but PutObjectRequest has
		// no such field.
		{emitHeader, "Expires", in.Expires},
		{emitHeader, "x-amz-storage-class", in.StorageClass},
		{emitHeader, "x-amz-tagging", in.Tagging},
		{emitHeader, "x-amz-website-redirect-location", in.WebsiteRedirectLocation},
		{emitHeader, "x-amz-acl", in.ACL},
		{emitHeader, "x-amz-grant-read", in.GrantRead},
		// The AWS document lists x-amz-grant-write but PutObjectRequest has
		// no such field.
		{emitHeader, "x-amz-grant-read-acp", in.GrantReadACP},
		{emitHeader, "x-amz-grant-write-acp", in.GrantWriteACP},
		{emitHeader, "x-amz-grant-full-control", in.GrantFullControl},
		{emitHeader, "x-amz-server-side-encryption", in.ServerSideEncryption},
		{emitHeader, "x-amz-server-side-encryption-aws-kms-key-id", in.SSEKMSKeyID},
		// The AWS document lists x-amz-server-side-encryption-context but
		// PutObjectRequest has no such field.
		{emitHeader, "x-amz-server-side-encryption-customer-algorithm", in.SSECustomerAlgorithm},
		{emitHeader, "x-amz-server-side-encryption-customer-key", in.SSECustomerKey},
		{emitHeader, "x-amz-server-side-encryption-customer-key-MD5", in.SSECustomerKeyMD5},
	}
}

// https://docs.aws.amazon.com/AmazonS3/latest/API/RESTObjectDELETE.html
func deleteObjectFields(in *dto.DeleteObjectRequest) []field {
	return []field{
		{emitHeader, "x-amz-mfa", in.MFA},

		{emitParam, "versionId", in.VersionID},
	}
}

// partNumber and uploadId are structural and emitted unconditionally by
// the builder; this table only covers the optional fields.
// https://docs.aws.amazon.com/AmazonS3/latest/API/mpUploadUploadPart.html
func uploadPartFields(in *dto.UploadPartRequest) []field {
	return []field{
		{emitHeader, "Content-Length", int64String(in.ContentLength)},
		{emitHeader, "Content-MD5", in.ContentMD5},
		{emitHeader, "x-amz-server-side-encryption-customer-algorithm", in.SSECustomerAlgorithm},
		{emitHeader, "x-amz-server-side-encryption-customer-key", in.SSECustomerKey},
		{emitHeader, "x-amz-server-side-encryption-customer-key-MD5", in.SSECustomerKeyMD5},
		{emitHeader, "x-amz-request-payer", in.RequestPayer},
	}
}
