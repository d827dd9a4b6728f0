package naming

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-imsto/properjpg/utils"
)

// UniqueName returns "<dir>/<stem>-N.jpg" beside input, with N counting up
// from 1 until no regular file exists at that path. The check runs against
// the filesystem at call time only.
func UniqueName(input string) string {
	return uniqueName(input, ".jpg", utils.IsRegular)
}

func uniqueName(input, ext string, exists func(string) bool) string {
	dir := filepath.Dir(input)
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s-%d%s", stem, n, ext))
		if !exists(candidate) {
			return candidate
		}
	}
}

// CollisionResolver tracks output paths claimed within one run. Forcing the
// .jpg extension can map "a.png" and "a.jpg" in the same directory to one
// output; the second claimant gets "a-1.jpg", then "a-2.jpg" and so on.
// All methods are goroutine-safe.
type CollisionResolver struct {
	mu       sync.Mutex
	owners   map[string]string // output path → source path that owns it
	counters map[string]int    // requested output → next suffix
}

// NewCollisionResolver creates a ready-to-use resolver.
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{
		owners:   make(map[string]string),
		counters: make(map[string]int),
	}
}

// Resolve returns the output path for src. An unclaimed request, or one
// already owned by src, is returned as is.
func (cr *CollisionResolver) Resolve(src, requested string) string {
	cr.mu.Lock()
	defer cr.mu.Unlock()

	owner, exists := cr.owners[requested]
	if !exists || owner == src {
		cr.owners[requested] = src
		return requested
	}

	ext := filepath.Ext(requested)
	stem := strings.TrimSuffix(requested, ext)

	counter := cr.counters[requested]
	if counter == 0 {
		counter = 1
	}
	for {
		candidate := fmt.Sprintf("%s-%d%s", stem, counter, ext)
		cOwner, cExists := cr.owners[candidate]
		if !cExists || cOwner == src {
			cr.counters[requested] = counter + 1
			cr.owners[candidate] = src
			return candidate
		}
		counter++
	}
}
