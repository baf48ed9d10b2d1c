// Package intern provides thread-safe string interning for argument
// parsing, where the same long option names and enumerated values recur
// across every invocation.
package intern

import "sync"

// Interner deduplicates strings so repeated lookups share one backing
// allocation.
type Interner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewInterner creates an interner with optional pre-allocated capacity.
func NewInterner(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 64
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (in *Interner) Intern(s string) string {
	in.mutex.RLock()
	if canonical, ok := in.strings[s]; ok {
		in.mutex.RUnlock()
		return canonical
	}
	in.mutex.RUnlock()

	in.mutex.Lock()
	defer in.mutex.Unlock()

	if canonical, ok := in.strings[s]; ok {
		return canonical
	}
	in.strings[s] = s
	return s
}

// PreIntern seeds the interner so hot-path lookups stay on the read lock.
func (in *Interner) PreIntern(values []string) {
	in.mutex.Lock()
	defer in.mutex.Unlock()
	for _, s := range values {
		in.strings[s] = s
	}
}

// Stats returns the number of interned strings.
func (in *Interner) Stats() int {
	in.mutex.RLock()
	defer in.mutex.RUnlock()
	return len(in.strings)
}

// Clear drops all interned strings without reallocating the table.
func (in *Interner) Clear() {
	in.mutex.Lock()
	defer in.mutex.Unlock()
	for k := range in.strings {
		delete(in.strings, k)
	}
}

// CommonOptionNames are long option names shared by many coreutils-style
// programs, pre-interned so first invocations skip the write lock.
var CommonOptionNames = []string{
	"help", "version", "verbose", "quiet", "silent",
	"all", "bytes", "lines", "color", "zero", "zero-terminated",
	"force", "interactive", "recursive", "suffix", "directory",
}

// Global is the process-wide interner used by the parsing hot path.
var Global = func() *Interner {
	in := NewInterner(128)
	in.PreIntern(CommonOptionNames)
	return in
}()

// Intern interns a string using the global interner.
func Intern(s string) string {
	return Global.Intern(s)
}
