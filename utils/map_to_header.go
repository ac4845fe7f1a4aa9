package utils

import "net/http"

const MetadataHeaderPrefix = "x-amz-meta-"

func MapToHeader(m map[string]string) http.Header {
	h := make(http.Header)
	for k, v := range m {
		h.Set(k, v)
	}
	return h
}

// MetadataToHeader converts an object metadata mapping into headers,
// prefixing every key with the AWS user-metadata prefix.
func MetadataToHeader(m map[string]string) http.Header {
	h := make(http.Header)
	for k, v := range m {
		h.Set(MetadataHeaderPrefix+k, v)
	}
	return h
}
