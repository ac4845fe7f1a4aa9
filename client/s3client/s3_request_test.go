package s3client

import (
	"net/http"
	"testing"

	"github.com/joy-dx/gopresign/dto"
)

func TestSignedRequest_HTTPRequest_Golden(t *testing.T) {
	r := NewSignedRequest(http.MethodGet, "s3", dto.RegionNamed("us-west-2"), "/bucket/key.txt")
	r.AddHeader("Range", "bytes=0-99")
	r.AddParam("versionId", "v1")
	r.SetHostname("s3.us-west-2.amazonaws.com")

	req, err := r.HTTPRequest()
	if err != nil {
		t.Fatalf("HTTPRequest error: %v", err)
	}
	if req.URL.Scheme != "https" {
		t.Fatalf("scheme mismatch: %q", req.URL.Scheme)
	}
	if req.URL.Host != "s3.us-west-2.amazonaws.com" {
		t.Fatalf("host mismatch: %q", req.URL.Host)
	}
	if req.URL.Path != "/bucket/key.txt" {
		t.Fatalf("path mismatch: %q", req.URL.Path)
	}
	if got := req.URL.Query().Get("versionId"); got != "v1" {
		t.Fatalf("query mismatch: %q", got)
	}
	if got := req.Header.Get("Range"); got != "bytes=0-99" {
		t.Fatalf("header mismatch: %q", got)
	}
}

func TestSignedRequest_HTTPRequest_RequiresHostname_Golden(t *testing.T) {
	r := NewSignedRequest(http.MethodGet, "s3", dto.RegionNamed("us-west-2"), "/b/k")
	if _, err := r.HTTPRequest(); err == nil {
		t.Fatalf("expected error without hostname")
	}
}

// Repeated AddHeader / AddParam with the same name keep the last value.
func TestSignedRequest_UniqueKeys_Golden(t *testing.T) {
	r := NewSignedRequest(http.MethodGet, "s3", dto.RegionNamed("us-west-2"), "/b/k")
	r.AddHeader("Range", "bytes=0-1")
	r.AddHeader("Range", "bytes=0-99")
	r.AddParam("versionId", "old")
	r.AddParam("versionId", "new")

	if got := r.Headers["Range"]; got != "bytes=0-99" {
		t.Fatalf("header mismatch: %q", got)
	}
	if got := r.Params.Get("versionId"); got != "new" {
		t.Fatalf("param mismatch: %q", got)
	}
}

func TestEncodeKey_Golden(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"plain.txt", "plain.txt"},
		{"dir/sub/key.txt", "dir/sub/key.txt"},
		{"with space.txt", "with%20space.txt"},
		{"percent%file", "percent%25file"},
		{"unreserved-_.~", "unreserved-_.~"},
		{"plus+and=eq", "plus%2Band%3Deq"},
	}

	for _, tc := range cases {
		if got := EncodeKey(tc.in); got != tc.want {
			t.Fatalf("EncodeKey(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
