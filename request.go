package gopresign

import (
	"context"
	"errors"
	"fmt"

	"github.com/joy-dx/gopresign/client/s3client"
	"github.com/joy-dx/gopresign/dto"
	"github.com/joy-dx/gopresign/relays"
	"github.com/joy-dx/gopresign/utils"
	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// GetObjectURL Presign for a simple object fetch
func (s *PresignSvc) GetObjectURL(ctx context.Context, bucket, key string) (string, error) {
	cfg := dto.DefaultRequestConfig()
	cfg.WithReqConfig(&s3client.S3RequestConfig{
		Operation: "get",
		Get:       &dto.GetObjectRequest{Bucket: bucket, Key: key},
	}).WithTaskName(fmt.Sprintf("PRESIGN GET s3://%s/%s", bucket, key))

	return s.Presign(ctx, &cfg)
}

// PutObjectURL Presign for a simple object store
func (s *PresignSvc) PutObjectURL(ctx context.Context, bucket, key string) (string, error) {
	cfg := dto.DefaultRequestConfig()
	cfg.WithReqConfig(&s3client.S3RequestConfig{
		Operation: "put",
		Put:       &dto.PutObjectRequest{Bucket: bucket, Key: key},
	}).WithTaskName(fmt.Sprintf("PRESIGN PUT s3://%s/%s", bucket, key))

	return s.Presign(ctx, &cfg)
}

// DeleteObjectURL Presign for an object delete
func (s *PresignSvc) DeleteObjectURL(ctx context.Context, bucket, key string) (string, error) {
	cfg := dto.DefaultRequestConfig()
	cfg.WithReqConfig(&s3client.S3RequestConfig{
		Operation: "delete",
		Delete:    &dto.DeleteObjectRequest{Bucket: bucket, Key: key},
	}).WithTaskName(fmt.Sprintf("PRESIGN DELETE s3://%s/%s", bucket, key))

	return s.Presign(ctx, &cfg)
}

// UploadPartURL Presign for one part of a multipart upload
func (s *PresignSvc) UploadPartURL(ctx context.Context, bucket, key, uploadID string, partNumber int32) (string, error) {
	cfg := dto.DefaultRequestConfig()
	cfg.WithReqConfig(&s3client.S3RequestConfig{
		Operation: "upload-part",
		UploadPart: &dto.UploadPartRequest{
			Bucket:     bucket,
			Key:        key,
			UploadID:   uploadID,
			PartNumber: partNumber,
		},
	}).WithTaskName(fmt.Sprintf("PRESIGN UPLOAD-PART s3://%s/%s", bucket, key))

	return s.Presign(ctx, &cfg)
}

// Presign runs the presign worker asynchronously and bridges it back to
// the caller. A context that expires before the worker reports produces
// the blocking failure; the worker's own outcome is never rewritten.
func (s *PresignSvc) Presign(ctx context.Context, cfg *dto.RequestConfig) (string, error) {
	type result struct {
		url string
		err error
	}

	done := make(chan result, 1)
	go func() {
		url, err := s.presignOnce(ctx, cfg)
		done <- result{url: url, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", dto.NewBlocking[*dto.ServiceError]()
	case r := <-done:
		return r.url, r.err
	}
}

func (s *PresignSvc) presignOnce(ctx context.Context, cfg *dto.RequestConfig) (string, error) {
	if cfg == nil {
		return "", dto.NewValidation[*dto.ServiceError]("nil RequestConfig provided")
	}
	if cfg.ClientRef == "" {
		return "", dto.NewValidation[*dto.ServiceError]("nil ClientRef provided")
	}
	if cfg.ReqConfig == nil {
		return "", dto.NewValidation[*dto.ServiceError]("nil ReqConfig provided")
	}
	if cfg.TaskName == "" {
		cfg.TaskName = "presign_request"
	}

	client, isOK := s.clients[cfg.ClientRef]
	if !isOK {
		return "", dto.NewValidation[*dto.ServiceError](fmt.Sprintf("client not found: %s", cfg.ClientRef))
	}

	// Sanity check that the req config matches the client type to avoid later casting confusion
	if client.Type() != cfg.ReqConfig.Ref() {
		return "", dto.NewValidation[*dto.ServiceError](fmt.Sprintf(
			"client type mismatch: client=%s(%s) req=%s",
			cfg.ClientRef,
			client.Type(),
			cfg.ReqConfig.Ref(),
		))
	}

	bucket, key, operation := describeRequest(cfg.ReqConfig)

	url, err := client.PresignRequest(ctx, cfg)
	if err != nil {
		lifted := dto.LiftError[*dto.ServiceError](err)
		s.publishPresignUpdate(dto.PresignNotification{
			Bucket:    bucket,
			Key:       key,
			Operation: operation,
			Status:    dto.PRESIGN_ERROR,
			Message:   lifted.Error(),
		})
		s.relay.Warn(relays.RlyPresign{
			Bucket:    bucket,
			Key:       key,
			Operation: operation,
			Msg:       lifted.Error(),
		})
		return "", lifted
	}

	s.publishPresignUpdate(dto.PresignNotification{
		Bucket:    bucket,
		Key:       key,
		Operation: operation,
		URL:       url,
		Status:    dto.PRESIGN_OK,
	})
	s.relay.Debug(relays.RlyPresign{
		Bucket:    bucket,
		Key:       key,
		Operation: operation,
		URL:       url,
		Msg:       "presigned " + cfg.TaskName,
	})
	return url, nil
}

// describeRequest extracts bucket, key and operation for notifications.
// Unknown request config types report empty targets; the client itself
// rejects them later.
func describeRequest(reqCfg dto.ReqConfigInterface) (bucket, key, operation string) {
	s3Cfg, ok := reqCfg.(*s3client.S3RequestConfig)
	if !ok {
		return "", "", ""
	}
	switch s3Cfg.Operation {
	case "get":
		if s3Cfg.Get != nil {
			return s3Cfg.Get.Bucket, s3Cfg.Get.Key, s3Cfg.Operation
		}
	case "put":
		if s3Cfg.Put != nil {
			return s3Cfg.Put.Bucket, s3Cfg.Put.Key, s3Cfg.Operation
		}
	case "delete":
		if s3Cfg.Delete != nil {
			return s3Cfg.Delete.Bucket, s3Cfg.Delete.Key, s3Cfg.Operation
		}
	case "upload-part":
		if s3Cfg.UploadPart != nil {
			return s3Cfg.UploadPart.Bucket, s3Cfg.UploadPart.Key, s3Cfg.Operation
		}
	case "list":
		if s3Cfg.List != nil {
			return s3Cfg.List.Bucket, "", s3Cfg.Operation
		}
	}
	return "", "", s3Cfg.Operation
}

func (s *PresignSvc) ExecuteWithRetry(ctx context.Context, cfg *dto.RequestConfig) (dto.Response, error) {
	if cfg == nil {
		return dto.Response{}, errors.New("nil RequestConfig provided")
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.Delay == nil {
		cfg.Delay = utils.ConstantDelay{Period: 1}
	}
	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			cfg.Delay.Wait(cfg.TaskName, attempt)
		}

		resp, err := s.Execute(ctx, cfg)
		if err != nil {
			lastErr = err
			if isRetryable(err) && attempt < cfg.MaxRetries {
				continue
			}
			return resp, err
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("server error (%d)", resp.StatusCode)
			if attempt < cfg.MaxRetries {
				continue
			}
			// exhausted retries: return response + error
			return resp, fmt.Errorf(
				"failed after %d attempts: %w",
				cfg.MaxRetries+1,
				lastErr,
			)
		}
		return resp, nil
	}

	return dto.Response{}, fmt.Errorf("failed after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

// isRetryable Transient transport failures retry; caller mistakes,
// unusable bucket names, credential problems and decode failures never
// resolve by retrying.
func isRetryable(err error) bool {
	var s3Err *dto.S3Error
	if errors.As(err, &s3Err) {
		switch s3Err.Kind() {
		case dto.ErrValidation, dto.ErrInvalidDNSName, dto.ErrCredentials, dto.ErrParse:
			return false
		}
	}
	return utils.IsTemporaryErr(err)
}

func (s *PresignSvc) Execute(ctx context.Context, cfg *dto.RequestConfig) (dto.Response, error) {

	if cfg.ClientRef == "" {
		return dto.Response{}, errors.New("nil ClientRef provided")
	}

	if cfg.ReqConfig == nil {
		return dto.Response{}, errors.New("nil ReqConfig provided")
	}

	if cfg.TaskName == "" {
		cfg.TaskName = "s3_request"
	}

	client, isOK := s.clients[cfg.ClientRef]
	if !isOK {
		return dto.Response{}, fmt.Errorf("client not found: %s", cfg.ClientRef)
	}

	// Sanity check that the req config matches the client type to avoid later casting confusion
	if client.Type() != cfg.ReqConfig.Ref() {
		return dto.Response{}, fmt.Errorf(
			"client type mismatch: client=%s(%s) req=%s",
			cfg.ClientRef,
			client.Type(),
			cfg.ReqConfig.Ref(),
		)
	}

	timeout := cfg.Timeout
	if timeout <= 0 && s.cfg != nil {
		timeout = s.cfg.RequestTimeout
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	response, err := client.ProcessRequest(ctx, cfg)
	if err != nil {
		return dto.Response{}, dto.LiftError[*dto.ServiceError](err)
	}

	if cfg.Checksum != "" {
		if err := utils.Sha256SumVerifyBytes(response.Body, cfg.Checksum); err != nil {
			return response, dto.NewValidation[*dto.ServiceError](err.Error())
		}
	}

	if cfg.ResponseObject != nil && len(response.Body) > 0 {
		if unmarshalErr := jsonAPI.Unmarshal(response.Body, cfg.ResponseObject); unmarshalErr != nil {
			return response, dto.FromDecode[*dto.ServiceError](unmarshalErr)
		}
	}

	return response, nil
}
