package s3client

import (
	"fmt"
	"strings"

	"github.com/joy-dx/gopresign/dto"
)

// BuildHostname resolves the hostname for a bucket under the given
// addressing style. It reports whether the result is virtual-hosted
// style. Path style never consults the bucket-name validator; Virtual
// style fails with *dto.InvalidDnsNameError when the bucket name is
// not a usable DNS label; Auto prefers virtual and silently falls back
// to path style when the name is unusable.
func BuildHostname(style dto.AddressingStyle, region dto.Region, bucket string) (bool, string, error) {
	baseHostname := buildPathStyleHostname(region)

	switch style {
	case dto.AddressingPath:
		return false, baseHostname, nil
	case dto.AddressingVirtual:
		hostname, err := buildVirtualStyleHostname(baseHostname, bucket)
		if err != nil {
			return false, "", err
		}
		return true, hostname, nil
	default:
		hostname, err := buildVirtualStyleHostname(baseHostname, bucket)
		if err != nil {
			return false, baseHostname, nil
		}
		return true, hostname, nil
	}
}

func buildPathStyleHostname(region dto.Region) string {
	if region.IsCustom() {
		return extractHostname(region.Endpoint())
	}
	switch region.Name() {
	case "cn-north-1", "cn-northwest-1":
		return fmt.Sprintf("s3.%s.amazonaws.com.cn", region.Name())
	default:
		return fmt.Sprintf("s3.%s.amazonaws.com", region.Name())
	}
}

func buildVirtualStyleHostname(baseHostname, bucket string) (string, error) {
	if !IsValidDNSName(bucket) {
		return "", dto.NewInvalidDnsNameError(fmt.Sprintf("Invalid DNS name. bucket: %s", bucket))
	}
	return bucket + "." + baseHostname, nil
}

// extractHostname strips the scheme prefix and any path suffix from a
// custom endpoint URL, keeping host and port.
func extractHostname(endpoint string) string {
	unschemed := endpoint
	if p := strings.Index(endpoint, "://"); p >= 0 {
		unschemed = endpoint[p+3:]
	}
	if p := strings.IndexByte(unschemed, '/'); p >= 0 {
		return unschemed[:p]
	}
	return unschemed
}

// schemeForRegion keeps explicit http custom endpoints on http;
// everything else signs https URLs.
func schemeForRegion(region dto.Region) string {
	if region.IsCustom() && strings.HasPrefix(region.Endpoint(), "http://") {
		return "http"
	}
	return "https"
}

// resolveAddressing wraps BuildHostname with the client's optional
// addressing observer, so a caller can see Auto downgrades without
// changing the silent-fallback behavior.
func (c *S3Client) resolveAddressing(style dto.AddressingStyle, bucket string) (bool, string, error) {
	isVirtual, hostname, err := BuildHostname(style, c.cfg.Region, bucket)
	if err != nil {
		return false, "", err
	}
	if c.cfg.OnAddressing != nil {
		c.cfg.OnAddressing(dto.AddressingEvent{
			Bucket:     bucket,
			Hostname:   hostname,
			Style:      style,
			Virtual:    isVirtual,
			Downgraded: style == dto.AddressingAuto && !isVirtual,
		})
	}
	return isVirtual, hostname, nil
}

// buildRequestURIAndHostname returns the request URI and hostname for
// one presigned operation: virtual addressing puts the bucket in the
// hostname, path addressing puts it as the first path segment.
func (c *S3Client) buildRequestURIAndHostname(style dto.AddressingStyle, bucket, key string) (string, string, error) {
	isVirtual, hostname, err := c.resolveAddressing(style, bucket)
	if err != nil {
		return "", "", err
	}

	requestURI := "/" + key
	if !isVirtual {
		requestURI = "/" + bucket + "/" + key
	}
	return requestURI, hostname, nil
}
