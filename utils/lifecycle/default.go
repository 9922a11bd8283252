package lifecycle

import (
	"sync/atomic"

	"github.com/ugparu/mfcore/utils/logger"
)

// Once marks a resource consumed on its first release. The zero value is ready to use.
type Once struct {
	released atomic.Bool
}

// Do runs release only for the first caller, concurrent callers included.
// It reports whether release ran.
func (o *Once) Do(release func()) bool {
	if !o.released.CompareAndSwap(false, true) {
		return false
	}
	release()
	return true
}

// Released reports whether Do has been called.
func (o *Once) Released() bool {
	return o.released.Load()
}

// Use acquires an instance, passes it to fn and releases it on every exit path, panics included.
func Use[T Instance](acquire func() (T, error), fn func(T) error) (err error) {
	inst, err := acquire()
	if err != nil {
		return err
	}
	defer func() {
		logger.Tracef(inst, "Releasing scoped instance")
		inst.Release()
	}()
	return fn(inst)
}
