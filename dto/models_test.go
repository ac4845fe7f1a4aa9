package dto

import (
	"net/http"
	"testing"
	"time"
)

func TestRegion_Golden(t *testing.T) {
	t.Parallel()

	named := RegionNamed("us-west-2")
	if named.Name() != "us-west-2" || named.IsCustom() {
		t.Fatalf("named region mismatch: %+v", named)
	}

	custom := CustomRegion("local", "http://127.0.0.1:9000")
	if custom.Name() != "local" || !custom.IsCustom() {
		t.Fatalf("custom region mismatch: %+v", custom)
	}
	if custom.Endpoint() != "http://127.0.0.1:9000" {
		t.Fatalf("endpoint mismatch: %q", custom.Endpoint())
	}
}

func TestAddressingStyle_String_Golden(t *testing.T) {
	t.Parallel()

	cases := map[AddressingStyle]string{
		AddressingAuto:    "auto",
		AddressingVirtual: "virtual",
		AddressingPath:    "path",
	}
	for style, want := range cases {
		if got := style.String(); got != want {
			t.Fatalf("String(%d) = %q, want %q", style, got, want)
		}
	}

	// The zero value must be Auto so unset configs prefer virtual
	// hosting with the silent fallback.
	var zero AddressingStyle
	if zero != AddressingAuto {
		t.Fatalf("zero value mismatch: %v", zero)
	}
}

func TestDefaultPreSignedRequestOption_Golden(t *testing.T) {
	t.Parallel()

	opt := DefaultPreSignedRequestOption()
	if opt.ExpiresIn != 3600*time.Second {
		t.Fatalf("default expiry mismatch: %v", opt.ExpiresIn)
	}
	if opt.AddressingStyle != AddressingAuto {
		t.Fatalf("default style mismatch: %v", opt.AddressingStyle)
	}

	opt.WithExpiresIn(time.Minute).WithAddressingStyle(AddressingPath)
	if opt.ExpiresIn != time.Minute || opt.AddressingStyle != AddressingPath {
		t.Fatalf("builder mismatch: %+v", opt)
	}
}

func TestResponse_RequestID_Golden(t *testing.T) {
	t.Parallel()

	resp := Response{Headers: http.Header{}}
	if _, ok := resp.RequestID(); ok {
		t.Fatalf("expected no request id")
	}

	resp.Headers.Set(AWSRequestIDHeader, "req-9")
	id, ok := resp.RequestID()
	if !ok || id != "req-9" {
		t.Fatalf("request id mismatch: %q %v", id, ok)
	}
}

func TestPutObjectRequest_Clone_Golden(t *testing.T) {
	t.Parallel()

	orig := &PutObjectRequest{
		Bucket:   "b",
		Key:      "k",
		Metadata: map[string]string{"a": "1"},
	}

	cp := orig.Clone()
	cp.Metadata["a"] = "changed"
	cp.Metadata["new"] = "x"

	if orig.Metadata["a"] != "1" {
		t.Fatalf("metadata aliased: %v", orig.Metadata)
	}
	if _, ok := orig.Metadata["new"]; ok {
		t.Fatalf("metadata aliased: %v", orig.Metadata)
	}

	var nilReq *PutObjectRequest
	if nilReq.Clone() != nil {
		t.Fatalf("nil clone must stay nil")
	}
}

func TestDefaultRequestConfig_Golden(t *testing.T) {
	t.Parallel()

	cfg := DefaultRequestConfig()
	if cfg.ClientRef != DEFAULT_CLIENT_REF {
		t.Fatalf("client ref mismatch: %q", cfg.ClientRef)
	}
	if cfg.Timeout != 20*time.Second || cfg.MaxRetries != 3 {
		t.Fatalf("defaults mismatch: %+v", cfg)
	}
	if cfg.Delay == nil {
		t.Fatalf("expected default delay")
	}
}
