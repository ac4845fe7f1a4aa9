package s3client

import (
	"context"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/joy-dx/gopresign/dto"
)

func TestS3RequestConfig_NewRequest_CopiesRequests_Golden(t *testing.T) {
	cfg := &S3RequestConfig{
		Operation: "put",
		Put: &dto.PutObjectRequest{
			Bucket:      "b",
			Key:         "k",
			Body:        []byte("x"),
			ContentType: aws.String("text/plain"),
			Metadata:    map[string]string{"a": "1"},
		},
		Presign: &dto.PreSignedRequestOption{
			ExpiresIn:       time.Minute,
			AddressingStyle: dto.AddressingPath,
		},
	}

	reqAny, err := cfg.NewRequest(context.Background())
	if err != nil {
		t.Fatalf("NewRequest error: %v", err)
	}
	req, ok := reqAny.(*S3Request)
	if !ok {
		t.Fatalf("expected *S3Request, got %T", reqAny)
	}

	// mutate input config after building request
	cfg.Put.Metadata["a"] = "CHANGED"
	cfg.Put.Metadata["new"] = "x"
	cfg.Put.ContentType = aws.String("application/json")
	cfg.Presign.ExpiresIn = time.Hour

	if req.Put == cfg.Put {
		t.Fatalf("expected put request to be copied, got same pointer")
	}
	if req.Put.Metadata["a"] != "1" {
		t.Fatalf("metadata aliased: got=%v", req.Put.Metadata)
	}
	if _, ok := req.Put.Metadata["new"]; ok {
		t.Fatalf("metadata aliased: got=%v", req.Put.Metadata)
	}
	if aws.ToString(req.Put.ContentType) != "text/plain" {
		t.Fatalf("content-type mismatch: got=%v", req.Put.ContentType)
	}
	if req.Presign.ExpiresIn != time.Minute {
		t.Fatalf("presign option aliased: got=%v", req.Presign.ExpiresIn)
	}
}

func TestS3RequestConfig_Ref_Golden(t *testing.T) {
	cfg := &S3RequestConfig{}
	if cfg.Ref() != ClientS3Ref {
		t.Fatalf("Ref mismatch: got=%v want=%v", cfg.Ref(), ClientS3Ref)
	}
}

func TestS3Request_Validate_Golden(t *testing.T) {
	cases := []struct {
		name    string
		req     *S3Request
		wantErr string
	}{
		{
			name:    "nil typed request",
			req:     &S3Request{Operation: "get"},
			wantErr: "get request is nil",
		},
		{
			name: "list needs no key",
			req: &S3Request{
				Operation: "list",
				List:      &dto.ListObjectsRequest{Bucket: "b"},
			},
		},
		{
			name: "missing key rejected",
			req: &S3Request{
				Operation: "delete",
				Delete:    &dto.DeleteObjectRequest{Bucket: "b"},
			},
			wantErr: "key is required",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.req.validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("expected err=%q, got=%v", tc.wantErr, err)
			}
		})
	}
}
