package s3client

// IsValidDNSName checks whether a bucket name complies with the
// restricted DNS naming conventions required for virtual-hosted-style
// addressing, i.e. matches `^[a-z0-9][a-z0-9\-]*[a-z0-9]$` with a
// total length of 3 to 63 characters.
//
// Even though "." characters are perfectly valid in DNS names, any
// name containing a "." is rejected here because it breaks TLS
// certificate validation under virtual-hosted-style addressing. That
// is a deliberate restriction, not a DNS-correctness check.
func IsValidDNSName(bucketName string) bool {
	n := len(bucketName)
	if n < 3 || n > 63 {
		// Wrong length
		return false
	}

	for i := 0; i < n; i++ {
		c := bucketName[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '-' && i > 0 && i < n-1:
		default:
			return false
		}
	}
	return true
}
