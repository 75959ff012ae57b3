// Package lock provides per-user mutexes so a user's purchase credit and an
// admin's withdrawal debit cannot interleave on the same ledger row.
package lock

import "sync"

type UserLock struct {
	locks sync.Map // map[int]*sync.Mutex
}

func NewUserLock() *UserLock {
	return &UserLock{}
}

func (ul *UserLock) get(userID int) *sync.Mutex {
	if v, ok := ul.locks.Load(userID); ok {
		return v.(*sync.Mutex)
	}
	v, _ := ul.locks.LoadOrStore(userID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

func (ul *UserLock) Lock(userID int) {
	ul.get(userID).Lock()
}

func (ul *UserLock) Unlock(userID int) {
	ul.get(userID).Unlock()
}

// WithLock runs fn while holding the user's lock.
func (ul *UserLock) WithLock(userID int, fn func() error) error {
	ul.Lock(userID)
	defer ul.Unlock(userID)
	return fn()
}
