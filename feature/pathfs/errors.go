package pathfs

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
)

// ErrBucketNotExist is reported by GetBucket when the bucket is absent.
var ErrBucketNotExist = errors.New("bucket does not exist")

// ClientError carries the storage service's message and HTTP status code for
// failures that are propagated rather than swallowed.
type ClientError struct {
	Message string
	Code    int
}

func (e *ClientError) Error() string {
	return fmt.Sprintf("storage client error (%d): %s", e.Code, e.Message)
}

// asClientError classifies an error from the storage client. It returns a
// ClientError for service-reported failures (authorization, rate limits,
// missing resources) and nil for anything else, such as context cancellation.
func asClientError(err error) *ClientError {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	if resp.Code == "" && resp.StatusCode == 0 {
		return nil
	}
	msg := resp.Message
	if msg == "" {
		msg = err.Error()
	}
	return &ClientError{Message: msg, Code: resp.StatusCode}
}

// isNotFound reports whether the storage client signalled a missing object or
// bucket.
func isNotFound(err error) bool {
	resp := minio.ToErrorResponse(err)
	return resp.StatusCode == http.StatusNotFound ||
		resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket"
}
