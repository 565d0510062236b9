// Package metadata is the client's durable key/value store. The session
// store keeps its token and serialized user here.
package metadata

import (
	"context"
)

// Repository is a string-keyed, string-valued store. Get reports a missing
// key with ok == false and a nil error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}
