// Package claim tracks which byte regions are currently bound to a live
// owner, so that no two owners can hold writable views over the same memory.
//
// Regions are identified by address interval [start, end). Zero-length
// regions own no memory and are never recorded.
package claim

import (
	"errors"
	"sort"
	"sync"
	"unsafe"
)

var ErrOverlap = errors.New("claim: region overlaps a live claim")

// Lease is one claimed address interval. A Lease keeps its region reachable
// until it is released, so the memory cannot be reused while it is claimed.
type Lease struct {
	start  uintptr
	end    uintptr
	region []byte
	live   bool
}

// Len returns the number of bytes covered by l.
func (l *Lease) Len() int {
	if l == nil {
		return 0
	}
	return int(l.end - l.start)
}

// Live reports whether l is still registered.
func (l *Lease) Live() bool { return l != nil && l.live }

// Registry is a set of disjoint live leases. It is safe for concurrent use.
type Registry struct {
	mu     sync.Mutex
	leases []*Lease // sorted by start
}

func bounds(region []byte) (start, end uintptr) {
	start = uintptr(unsafe.Pointer(unsafe.SliceData(region)))
	return start, start + uintptr(len(region))
}

// Claim records region as owned. It returns (nil, nil) for an empty region
// and ErrOverlap if any byte of region is already claimed.
func (r *Registry) Claim(region []byte) (*Lease, error) {
	if len(region) == 0 {
		return nil, nil
	}
	start, end := bounds(region)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.search(start)
	if i < len(r.leases) && r.leases[i].start < end {
		return nil, ErrOverlap
	}

	l := &Lease{start: start, end: end, region: region, live: true}
	r.insertAt(i, l)
	return l, nil
}

// Release unregisters l. Releasing nil or an already released lease is a
// no-op.
func (r *Registry) Release(l *Lease) {
	if l == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if !l.live {
		return
	}
	if i := r.indexOf(l); i >= 0 {
		r.leases = append(r.leases[:i], r.leases[i+1:]...)
	}
	l.live = false
	l.region = nil
}

// Split divides l at byte offset at into a head covering [0, at) and a tail
// covering [at, l.Len()). Both halves are updated under one lock, so no
// observer sees the interval partially transferred.
//
// The head is l itself (shrunk) unless it would be empty, in which case it is
// nil and l becomes the tail. The tail is nil when it would be empty.
// Split panics if at is outside [0, l.Len()].
func (r *Registry) Split(l *Lease, at int) (head, tail *Lease) {
	if l == nil {
		if at != 0 {
			panic("claim: split offset out of range")
		}
		return nil, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	size := int(l.end - l.start)
	if at < 0 || at > size {
		panic("claim: split offset out of range")
	}
	if !l.live {
		return nil, nil
	}

	switch at {
	case 0:
		return nil, l
	case size:
		return l, nil
	}

	tail = &Lease{
		start:  l.start + uintptr(at),
		end:    l.end,
		region: l.region[at:],
		live:   true,
	}
	l.end = tail.start
	l.region = l.region[:at:at]

	r.insertAt(r.indexOf(l)+1, tail)
	return l, tail
}

// Overlaps reports whether any byte of region is currently claimed.
func (r *Registry) Overlaps(region []byte) bool {
	if len(region) == 0 {
		return false
	}
	start, end := bounds(region)

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.search(start)
	return i < len(r.leases) && r.leases[i].start < end
}

// Len returns the number of live leases.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.leases)
}

// search returns the index of the first lease ending after start.
func (r *Registry) search(start uintptr) int {
	return sort.Search(len(r.leases), func(i int) bool {
		return r.leases[i].end > start
	})
}

func (r *Registry) indexOf(l *Lease) int {
	i := r.search(l.start)
	if i < len(r.leases) && r.leases[i] == l {
		return i
	}
	return -1
}

func (r *Registry) insertAt(i int, l *Lease) {
	r.leases = append(r.leases, nil)
	copy(r.leases[i+1:], r.leases[i:])
	r.leases[i] = l
}
