package demo

import (
	"fmt"
	"io"

	"showcase/internal/console"
	"showcase/internal/model"
	"showcase/internal/ownership"
)

// OwnershipResult is what the ownership demo observed.
type OwnershipResult struct {
	SharedCount int64
	Resolved    string
	// Expired is whether the weak handle expired once every owner released.
	Expired bool
}

// Ownership shows an exclusive owner, a shared value with two owners, and a
// weak handle locked while the owners are alive.
func Ownership(w io.Writer) OwnershipResult {
	console.Separator(w, "Ownership Demo")

	unique := ownership.NewUnique(model.NewExample("Unique"))
	defer unique.Reset()
	unique.Get().Print(w)

	shared1 := ownership.NewShared(model.NewExample("Shared"))
	shared2 := shared1.Clone()

	res := OwnershipResult{SharedCount: shared1.UseCount()}
	fmt.Fprintf(w, "Shared count: %d\n", res.SharedCount)

	weak := shared1.Downgrade()
	if locked, ok := weak.Lock(); ok {
		locked.Get().Print(w)
		res.Resolved = locked.Get().Name()
		locked.Release()
	}

	shared2.Release()
	shared1.Release()
	res.Expired = weak.Expired()

	return res
}
