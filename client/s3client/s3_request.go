package s3client

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/joy-dx/gopresign/dto"
)

// SignedRequest is the builder-local intermediate handed to the
// signer: method, service, region, URI path, unique-keyed headers and
// query parameters, and a hostname override. It is created empty per
// call, populated field by field, consumed exactly once, then
// discarded.
type SignedRequest struct {
	Method   string
	Service  string
	Region   dto.Region
	Path     string
	Headers  map[string]string
	Params   url.Values
	Scheme   string
	Hostname string
}

func NewSignedRequest(method, service string, region dto.Region, path string) *SignedRequest {
	return &SignedRequest{
		Method:  method,
		Service: service,
		Region:  region,
		Path:    path,
		Headers: map[string]string{},
		Params:  url.Values{},
		Scheme:  schemeForRegion(region),
	}
}

func (r *SignedRequest) AddHeader(name, value string) {
	r.Headers[name] = value
}

func (r *SignedRequest) AddParam(name, value string) {
	r.Params.Set(name, value)
}

func (r *SignedRequest) SetHostname(hostname string) {
	r.Hostname = hostname
}

// HTTPRequest materializes the intermediate for the signer.
func (r *SignedRequest) HTTPRequest() (*http.Request, error) {
	if r.Hostname == "" {
		return nil, fmt.Errorf("signed request has no hostname")
	}

	u := url.URL{
		Scheme:   r.Scheme,
		Host:     r.Hostname,
		Path:     r.Path,
		RawQuery: r.Params.Encode(),
	}

	req, err := http.NewRequest(r.Method, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build http request: %w", err)
	}
	for k, v := range r.Headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

// EncodeKey URL encodes an object key for use in copy-source style
// fields, which carry "bucket/key" as a single encoded value.
func EncodeKey(key string) string {
	var b strings.Builder
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z', c >= '0' && c <= '9':
			b.WriteByte(c)
		case c == '-' || c == '_' || c == '.' || c == '~' || c == '/':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
