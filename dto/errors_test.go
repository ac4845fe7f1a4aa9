package dto

import (
	"errors"
	"net/http"
	"testing"

	"github.com/aws/smithy-go"
)

func TestError_Display_Golden(t *testing.T) {
	t.Parallel()

	unknownResp := Response{
		StatusCode: 500,
		Headers:    http.Header{},
		Body:       []byte("oops"),
	}
	unknownResp.Headers.Set(AWSRequestIDHeader, "abc123")

	cases := []struct {
		name string
		err  *S3Error
		want string
	}{
		{
			name: "service delegates to the payload",
			err: NewService(&ServiceError{
				Code:    "NoSuchKey",
				Message: "The specified key does not exist.",
			}),
			want: "NoSuchKey: The specified key does not exist.",
		},
		{
			name: "service includes request id when present",
			err: NewService(&ServiceError{
				Code:      "SlowDown",
				Message:   "Reduce your request rate.",
				RequestID: "req-1",
			}),
			want: "SlowDown: Reduce your request rate. (request id: req-1)",
		},
		{
			name: "dispatch delegates to the cause",
			err:  NewDispatch[*ServiceError](NewHTTPDispatchErrorMessage("connection refused")),
			want: "connection refused",
		},
		{
			name: "dns delegates to the cause",
			err:  NewInvalidDNSName[*ServiceError](NewInvalidDnsNameError("Invalid DNS name. bucket: My_Bucket")),
			want: "Invalid DNS name. bucket: My_Bucket",
		},
		{
			name: "credentials delegates to the cause",
			err:  NewCredentials[*ServiceError](NewCredentialsError("no provider")),
			want: "no provider",
		},
		{
			name: "validation carries its message",
			err:  NewValidation[*ServiceError]("bucket is required"),
			want: "bucket is required",
		},
		{
			name: "parse carries its message",
			err:  NewParse[*ServiceError]("unexpected end of JSON input"),
			want: "unexpected end of JSON input",
		},
		{
			name: "unknown renders request id and body",
			err:  NewUnknown[*ServiceError](unknownResp),
			want: "Request ID: abc123 Body: oops",
		},
		{
			name: "unknown without request id header",
			err:  NewUnknown[*ServiceError](Response{Headers: http.Header{}, Body: []byte("oops")}),
			want: "Request ID: none found Body: oops",
		},
		{
			name: "blocking has a fixed message",
			err:  NewBlocking[*ServiceError](),
			want: "failed to run blocking request",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Fatalf("display mismatch:\n got=%q\nwant=%q", got, tc.want)
			}
		})
	}
}

func TestError_Unwrap_Golden(t *testing.T) {
	t.Parallel()

	t.Run("service exposes the payload", func(t *testing.T) {
		payload := &ServiceError{Code: "NoSuchBucket"}
		err := NewService(payload)

		var apiErr smithy.APIError
		if !errors.As(err, &apiErr) || apiErr.ErrorCode() != "NoSuchBucket" {
			t.Fatalf("expected payload in chain, got %v", err)
		}
	})

	t.Run("credentials exposes the original cause", func(t *testing.T) {
		cause := errors.New("sts unreachable")
		err := NewCredentials[*ServiceError](WrapCredentialsError(cause))

		if !errors.Is(err, cause) {
			t.Fatalf("expected cause in chain, got %v", err)
		}
	})

	t.Run("dispatch exposes the original cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewDispatch[*ServiceError](NewHTTPDispatchError(cause))

		if !errors.Is(err, cause) {
			t.Fatalf("expected cause in chain, got %v", err)
		}
	})

	t.Run("leaf variants unwrap to nil", func(t *testing.T) {
		for _, err := range []*S3Error{
			NewValidation[*ServiceError]("x"),
			NewParse[*ServiceError]("x"),
			NewUnknown[*ServiceError](Response{}),
			NewBlocking[*ServiceError](),
			NewInvalidDNSName[*ServiceError](NewInvalidDnsNameError("x")),
		} {
			if err.Unwrap() != nil {
				t.Fatalf("expected leaf for kind %v, got %v", err.Kind(), err.Unwrap())
			}
		}
	})
}

func TestError_Accessors_Golden(t *testing.T) {
	t.Parallel()

	payload := &ServiceError{Code: "AccessDenied"}
	svcErr := NewService(payload)

	if got, ok := svcErr.Service(); !ok || got != payload {
		t.Fatalf("Service() mismatch: %v %v", got, ok)
	}
	if _, ok := NewValidation[*ServiceError]("x").Service(); ok {
		t.Fatalf("Service() must only report for the service variant")
	}

	resp := Response{StatusCode: 500}
	unkErr := NewUnknown[*ServiceError](resp)
	if got, ok := unkErr.Response(); !ok || got.StatusCode != 500 {
		t.Fatalf("Response() mismatch: %v %v", got, ok)
	}
	if _, ok := svcErr.Response(); ok {
		t.Fatalf("Response() must only report for the unknown variant")
	}
}

func TestLiftError_Golden(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		err      error
		wantKind ErrorKind
	}{
		{
			name:     "already lifted passes through",
			err:      NewValidation[*ServiceError]("x"),
			wantKind: ErrValidation,
		},
		{
			name:     "dns error",
			err:      NewInvalidDnsNameError("bad name"),
			wantKind: ErrInvalidDNSName,
		},
		{
			name:     "credentials error",
			err:      NewCredentialsError("no provider"),
			wantKind: ErrCredentials,
		},
		{
			name:     "dispatch error",
			err:      NewHTTPDispatchErrorMessage("refused"),
			wantKind: ErrHTTPDispatch,
		},
		{
			name:     "sign-and-dispatch with credentials side",
			err:      &SignAndDispatchError{Credentials: NewCredentialsError("expired")},
			wantKind: ErrCredentials,
		},
		{
			name:     "sign-and-dispatch with dispatch side",
			err:      &SignAndDispatchError{Dispatch: NewHTTPDispatchErrorMessage("timeout")},
			wantKind: ErrHTTPDispatch,
		},
		{
			name:     "anything else is a dispatch failure",
			err:      errors.New("dial tcp: connection refused"),
			wantKind: ErrHTTPDispatch,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lifted := LiftError[*ServiceError](tc.err)
			if lifted.Kind() != tc.wantKind {
				t.Fatalf("kind mismatch: got=%v want=%v", lifted.Kind(), tc.wantKind)
			}
		})
	}
}

func TestFromSignAndDispatch_Golden(t *testing.T) {
	t.Parallel()

	credSide := FromSignAndDispatch[*ServiceError](&SignAndDispatchError{
		Credentials: NewCredentialsError("expired"),
	})
	if credSide.Kind() != ErrCredentials {
		t.Fatalf("kind mismatch: %v", credSide.Kind())
	}

	dispatchSide := FromSignAndDispatch[*ServiceError](&SignAndDispatchError{
		Dispatch: NewHTTPDispatchErrorMessage("timeout"),
	})
	if dispatchSide.Kind() != ErrHTTPDispatch {
		t.Fatalf("kind mismatch: %v", dispatchSide.Kind())
	}
}

func TestFromDecode_Golden(t *testing.T) {
	t.Parallel()

	err := FromDecode[*ServiceError](errors.New("unexpected end of JSON input"))
	if err.Kind() != ErrParse {
		t.Fatalf("kind mismatch: %v", err.Kind())
	}
	if err.Error() != "unexpected end of JSON input" {
		t.Fatalf("display mismatch: %q", err.Error())
	}
}
