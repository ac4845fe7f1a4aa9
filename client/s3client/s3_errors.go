package s3client

import (
	"errors"
	"io"
	"net/http"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	"github.com/joy-dx/gopresign/dto"
)

// classifySDKError lifts an aws-sdk-go-v2 operation error into the
// layered error type. A modeled service error becomes Service, an HTTP
// response without a modeled error becomes Unknown with the captured
// response, everything else is a dispatch failure.
func classifySDKError(err error) *dto.S3Error {
	var respErr *awshttp.ResponseError
	hasResp := errors.As(err, &respErr)

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		svc := &dto.ServiceError{
			Code:    apiErr.ErrorCode(),
			Message: apiErr.ErrorMessage(),
			Fault:   apiErr.ErrorFault(),
		}
		if hasResp {
			svc.RequestID = respErr.ServiceRequestID()
		}
		return dto.NewService(svc)
	}

	if hasResp {
		return dto.NewUnknown[*dto.ServiceError](captureResponse(respErr))
	}

	return dto.FromDispatch[*dto.ServiceError](dto.NewHTTPDispatchError(err))
}

// captureResponse snapshots whatever the transport still holds. The
// body is usually already drained by the deserializer; an empty body is
// acceptable for the Unknown display contract.
func captureResponse(respErr *awshttp.ResponseError) dto.Response {
	resp := dto.Response{
		StatusCode: respErr.HTTPStatusCode(),
		Headers:    http.Header{},
	}
	if raw := respErr.HTTPResponse(); raw != nil {
		resp.Headers = raw.Header.Clone()
		if raw.Body != nil {
			if data, err := io.ReadAll(raw.Body); err == nil {
				resp.Body = data
			}
		}
	}
	if resp.Headers == nil {
		resp.Headers = http.Header{}
	}
	if id := respErr.ServiceRequestID(); id != "" && resp.Headers.Get(dto.AWSRequestIDHeader) == "" {
		resp.Headers.Set(dto.AWSRequestIDHeader, id)
	}
	return resp
}
