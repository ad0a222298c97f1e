package cache

import (
	"github.com/dgraph-io/ristretto"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
)

var (
	R *ristretto.Cache
	S *ristretto_store.RistrettoStore
)

func NewStore() error {
	var err error
	R, err = ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1e7,
		BufferItems: 64,
	})
	if err != nil {
		return err
	}

	S = ristretto_store.NewRistretto(R)

	return nil
}

// Wait blocks until buffered writes are applied. Ristretto admits entries
// asynchronously; callers that need read-your-write (the test suites) go
// through here instead of sleeping.
func Wait() {
	R.Wait()
}
