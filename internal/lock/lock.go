// Package lock serializes booking admission per doctor.
package lock

import "context"

// Locker grants exclusive access to key until the returned unlock is called.
// Lock blocks until the key is free or ctx is done.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}
