package pageload

import (
	"sort"
	"sync"
)

// FlagSet tracks which pages are currently being fetched, keyed by the
// page's server filename rather than its position so reordering or
// filtering the page list cannot misattribute a flag. Entries are removed
// on completion, never set to false.
type FlagSet struct {
	mu    sync.Mutex
	inUse map[string]struct{}
}

// Set marks a filename as in-flight. It returns false if the filename is
// already marked.
func (f *FlagSet) Set(filename string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.inUse == nil {
		f.inUse = make(map[string]struct{})
	}
	if _, ok := f.inUse[filename]; ok {
		return false
	}
	f.inUse[filename] = struct{}{}
	return true
}

// Clear removes a filename from the set.
func (f *FlagSet) Clear(filename string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.inUse, filename)
}

// Contains reports whether a filename is in-flight.
func (f *FlagSet) Contains(filename string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.inUse[filename]
	return ok
}

// Len returns the number of in-flight filenames.
func (f *FlagSet) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.inUse)
}

// List returns the in-flight filenames in sorted order.
func (f *FlagSet) List() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	names := make([]string, 0, len(f.inUse))
	for name := range f.inUse {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
