package dto

import (
	"net/http"
	"time"
)

const DEFAULT_CLIENT_REF = "client.default"

type ClientType string

// Region identifies the partition/location a request is addressed to.
// The zero value is not usable; construct with RegionNamed or CustomRegion.
type Region struct {
	name     string
	endpoint string
}

// RegionNamed returns a well-known AWS region, e.g. "us-west-2".
func RegionNamed(name string) Region {
	return Region{name: name}
}

// CustomRegion returns a region backed by an explicit endpoint URL,
// e.g. minio or localstack. The name is still used as the SigV4
// signing region.
func CustomRegion(name, endpoint string) Region {
	return Region{name: name, endpoint: endpoint}
}

func (r Region) Name() string     { return r.name }
func (r Region) Endpoint() string { return r.endpoint }
func (r Region) IsCustom() bool   { return r.endpoint != "" }

// AddressingStyle selects virtual-hosted vs path-style bucket
// addressing. The zero value is Auto.
type AddressingStyle int

const (
	AddressingAuto AddressingStyle = iota
	AddressingVirtual
	AddressingPath
)

func (s AddressingStyle) String() string {
	switch s {
	case AddressingVirtual:
		return "virtual"
	case AddressingPath:
		return "path"
	default:
		return "auto"
	}
}

// S3Config is the client-wide addressing policy.
type S3Config struct {
	AddressingStyle AddressingStyle
}

// PreSignedRequestOption carries the per-call presign knobs.
// A nil option means "inherit the client defaults".
type PreSignedRequestOption struct {
	ExpiresIn       time.Duration
	AddressingStyle AddressingStyle
}

func DefaultPreSignedRequestOption() PreSignedRequestOption {
	return PreSignedRequestOption{
		ExpiresIn:       3600 * time.Second,
		AddressingStyle: AddressingAuto,
	}
}

func (o *PreSignedRequestOption) WithExpiresIn(d time.Duration) *PreSignedRequestOption {
	o.ExpiresIn = d
	return o
}

func (o *PreSignedRequestOption) WithAddressingStyle(s AddressingStyle) *PreSignedRequestOption {
	o.AddressingStyle = s
	return o
}

// Response is a captured raw response: status, headers and the fully
// buffered body. It is all a caller has for unclassified failures.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

func (r Response) BodyAsString() string {
	return string(r.Body)
}

// RequestID returns the value of the AWS request-id header, if present.
func (r Response) RequestID() (string, bool) {
	v := r.Headers.Get(AWSRequestIDHeader)
	return v, v != ""
}

// AddressingEvent reports a hostname resolution. Downgraded is set when
// Auto style wanted virtual addressing but fell back to path style.
type AddressingEvent struct {
	Bucket     string
	Hostname   string
	Style      AddressingStyle
	Virtual    bool
	Downgraded bool
}

type PresignStatus string

const (
	PRESIGN_OK    PresignStatus = "ok"
	PRESIGN_ERROR PresignStatus = "error"
)

// PresignNotification is published to bucket listeners after every
// presign attempt made through the service layer.
type PresignNotification struct {
	Bucket     string        `json:"bucket" yaml:"bucket"`
	Key        string        `json:"key" yaml:"key"`
	Operation  string        `json:"operation" yaml:"operation"`
	URL        string        `json:"url,omitempty" yaml:"url,omitempty"`
	Status     PresignStatus `json:"status" yaml:"status"`
	Downgraded bool          `json:"downgraded,omitempty" yaml:"downgraded,omitempty"`
	Message    string        `json:"message,omitempty" yaml:"message,omitempty"`
}

// Client Shared identity metadata for registered clients
type Client struct {
	Name        string     `json:"name" yaml:"name"`
	Ref         string     `json:"ref" yaml:"ref"`
	ClientType  ClientType `json:"client_type" yaml:"client_type"`
	Description string     `json:"description" yaml:"description"`
}

type SvcState struct {
	Region         string                         `json:"region" yaml:"region"`
	RequestTimeout time.Duration                  `json:"request_timeout,omitempty" yaml:"request_timeout,omitempty"`
	DefaultExpires time.Duration                  `json:"default_expires,omitempty" yaml:"default_expires,omitempty"`
	Addressing     string                         `json:"addressing" yaml:"addressing"`
	PresignsStatus map[string]PresignNotification `json:"presigns_status,omitempty" yaml:"presigns_status,omitempty"`
}
