package buffer

import (
	"runtime"

	"github.com/iw2rmb/slicestr/internal/claim"
)

// claims holds the regions of every live Buffer in the process.
var claims claim.Registry

// track makes b the owner of lease. A Buffer that becomes unreachable
// releases its lease from the cleanup goroutine.
func (b *Buffer) track(lease *claim.Lease) {
	b.lease = lease
	if lease == nil {
		return
	}
	b.cleanup = runtime.AddCleanup(b, claims.Release, lease)
}

func (b *Buffer) untrack() {
	if b.lease == nil {
		return
	}
	b.cleanup.Stop()
	claims.Release(b.lease)
	b.lease = nil
}

// handOff drops b's cleanup without releasing the lease, which now belongs to
// another Buffer.
func (b *Buffer) handOff() {
	if b.lease == nil {
		return
	}
	b.cleanup.Stop()
	b.lease = nil
}
