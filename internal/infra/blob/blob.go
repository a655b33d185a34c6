// Package blob is the durable medium behind the JSON record store: a flat
// namespace of named objects on local disk or in an S3 bucket.
package blob

import (
	"context"
	"errors"
)

var ErrNotExist = errors.New("blob does not exist")

type Bucket interface {
	// Read returns ErrNotExist when the object is missing.
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}
