package s3client

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	"github.com/joy-dx/gopresign/dto"
)

func TestStaticMetadataMiddleware_Golden(t *testing.T) {
	cases := []struct {
		name string
		req  *S3Request
		meta map[string]string
		want map[string]string
	}{
		{
			name: "no-op for non-put",
			req: &S3Request{
				Operation: "get",
				Get:       &dto.GetObjectRequest{Bucket: "b", Key: "k"},
			},
			meta: map[string]string{"a": "1"},
			want: nil,
		},
		{
			name: "creates metadata map when missing",
			req: &S3Request{
				Operation: "put",
				Put:       &dto.PutObjectRequest{Bucket: "b", Key: "k"},
			},
			meta: map[string]string{"a": "1"},
			want: map[string]string{"a": "1"},
		},
		{
			name: "merges into existing metadata map",
			req: &S3Request{
				Operation: "put",
				Put: &dto.PutObjectRequest{
					Bucket:   "b",
					Key:      "k",
					Metadata: map[string]string{"a": "old", "keep": "y"},
				},
			},
			meta: map[string]string{"a": "new", "b": "2"},
			want: map[string]string{"a": "new", "b": "2", "keep": "y"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mw := StaticMetadataMiddleware(tc.meta)
			if err := mw(context.Background(), tc.req); err != nil {
				t.Fatalf("middleware error: %v", err)
			}

			var got map[string]string
			if tc.req.Put != nil {
				got = tc.req.Put.Metadata
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("metadata mismatch:\n got=%#v\nwant=%#v", got, tc.want)
			}
		})
	}
}

func TestLoggingMiddleware_Format_Golden(t *testing.T) {
	var got string
	mw := LoggingMiddleware(func(msg string) { got = msg })

	r := &S3Request{
		Operation: "put",
		Put:       &dto.PutObjectRequest{Bucket: "bucket", Key: "key"},
	}
	if err := mw(context.Background(), r); err != nil {
		t.Fatalf("middleware error: %v", err)
	}

	want := "[S3] PUT s3://bucket/key"
	if got != want {
		t.Fatalf("log format mismatch:\n got=%q\nwant=%q", got, want)
	}
}

func ExampleStaticMetadataMiddleware() {
	r := &S3Request{
		Operation: "put",
		Put:       &dto.PutObjectRequest{Bucket: "b", Key: "k"},
	}
	_ = StaticMetadataMiddleware(map[string]string{"a": "1"})(context.Background(), r)
	fmt.Println(r.Put.Metadata)
	// Output: map[a:1]
}
