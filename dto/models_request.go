package dto

// Operation request values. Callers construct and own these; builders
// only read them. Optional fields are pointers: nil means "do not emit
// the corresponding header or query parameter".

// GetObjectRequest describes a retrieve-object operation.
// https://docs.aws.amazon.com/AmazonS3/latest/API/RESTObjectGET.html
type GetObjectRequest struct {
	Bucket string
	Key    string

	Range             *string
	IfModifiedSince   *string
	IfUnmodifiedSince *string
	IfMatch           *string
	IfNoneMatch       *string

	SSECustomerAlgorithm *string
	SSECustomerKey       *string
	SSECustomerKeyMD5    *string

	PartNumber                 *int32
	ResponseContentType        *string
	ResponseContentLanguage    *string
	ResponseExpires            *string
	ResponseCacheControl       *string
	ResponseContentDisposition *string
	ResponseContentEncoding    *string
	VersionID                  *string
}

// Clone returns a copy safe to hand to middleware. Pointer fields are
// shared; string contents are immutable so mutation requires replacing
// the pointer, which only affects the copy.
func (r *GetObjectRequest) Clone() *GetObjectRequest {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

// PutObjectRequest describes a store-object operation.
// https://docs.aws.amazon.com/AmazonS3/latest/API/RESTObjectPUT.html
type PutObjectRequest struct {
	Bucket string
	Key    string

	// Body is only consumed by the execution path; presigned PUT URLs
	// are generated with an unsigned payload.
	Body []byte

	CacheControl            *string
	ContentDisposition      *string
	ContentEncoding         *string
	ContentLength           *int64
	ContentMD5              *string
	ContentType             *string
	Expires                 *string
	StorageClass            *string
	Tagging                 *string
	WebsiteRedirectLocation *string

	ACL              *string
	GrantRead        *string
	GrantReadACP     *string
	GrantWriteACP    *string
	GrantFullControl *string

	ServerSideEncryption *string
	SSEKMSKeyID          *string
	SSECustomerAlgorithm *string
	SSECustomerKey       *string
	SSECustomerKeyMD5    *string

	// Metadata entries are emitted as x-amz-meta-<key> headers.
	Metadata map[string]string
}

func (r *PutObjectRequest) Clone() *PutObjectRequest {
	if r == nil {
		return nil
	}
	out := *r
	if r.Metadata != nil {
		out.Metadata = make(map[string]string, len(r.Metadata))
		for k, v := range r.Metadata {
			out.Metadata[k] = v
		}
	}
	return &out
}

// DeleteObjectRequest describes a delete-object operation.
// https://docs.aws.amazon.com/AmazonS3/latest/API/RESTObjectDELETE.html
type DeleteObjectRequest struct {
	Bucket string
	Key    string

	MFA       *string
	VersionID *string
}

func (r *DeleteObjectRequest) Clone() *DeleteObjectRequest {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

// UploadPartRequest describes uploading one part of a multipart upload.
// PartNumber and UploadID are structural: they are always emitted as
// query parameters, even when zero-valued.
// https://docs.aws.amazon.com/AmazonS3/latest/API/mpUploadUploadPart.html
type UploadPartRequest struct {
	Bucket     string
	Key        string
	PartNumber int32
	UploadID   string

	// Body is only consumed by the execution path.
	Body []byte

	ContentLength *int64
	ContentMD5    *string

	SSECustomerAlgorithm *string
	SSECustomerKey       *string
	SSECustomerKeyMD5    *string

	RequestPayer *string
}

func (r *UploadPartRequest) Clone() *UploadPartRequest {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}

// ListObjectsRequest describes a list-objects operation. List is only
// supported by the execution path; it has no presigned form here.
type ListObjectsRequest struct {
	Bucket string

	Prefix  *string
	MaxKeys *int32
}

func (r *ListObjectsRequest) Clone() *ListObjectsRequest {
	if r == nil {
		return nil
	}
	out := *r
	return &out
}
