package sampler

import (
	"math/rand/v2"

	gberrors "github.com/lepinkainen/gbrandom/internal/errors"
)

// PickFunc returns a uniformly distributed integer in [0, n). It is only ever
// called with n > 0.
type PickFunc func(n int64) int64

// defaultPick is safe for concurrent use.
var defaultPick PickFunc = rand.Int64N

// PickIndex chooses a random zero-based index into a collection of total items.
// A non-positive total is reported as an EmptyCatalogError without calling pick.
func PickIndex(pick PickFunc, total int64) (int64, error) {
	if total <= 0 {
		return 0, gberrors.NewEmptyCatalogError(total)
	}
	if pick == nil {
		pick = defaultPick
	}
	return pick(total), nil
}
