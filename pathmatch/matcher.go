package pathmatch

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/vitalvas/prefixmux/substring"
)

// separator is the path separator prefixes are split on.
const separator = "/"

// Registration errors.
var (
	// ErrPrefixEmpty is returned when AddPrefix is called with an empty
	// prefix.
	ErrPrefixEmpty = errors.New("pathmatch: prefix not specified")

	// ErrPrefixTrailingSlash is returned when AddPrefix is called with a
	// prefix ending in the path separator. Trailing separators would make
	// the prefix length ambiguous during matching.
	ErrPrefixTrailingSlash = errors.New("pathmatch: prefix cannot end with " + separator)
)

// Matcher resolves request paths to handlers under longest-prefix
// semantics. The handler type is opaque to the matcher.
//
// A Matcher starts empty. Create instances with New; the zero value is
// read-safe (every path resolves to the absent default) but does not
// accept registrations.
type Matcher[T any] struct {
	mu sync.Mutex // serializes registrations; Match never takes it

	paths *substring.Map[T]

	// lengths is the descending list of distinct registered prefix
	// lengths. It is rebuilt in full on every registration and published
	// with an atomic swap, so Match reads one immutable snapshot.
	lengths atomic.Pointer[[]int]

	defaultHandler atomic.Pointer[T]
}

// Match is the outcome of a lookup. It is a plain value with no reference
// back into the matcher.
type Match[T any] struct {
	// Matched is the registered prefix that matched, or the path
	// separator when only the default handler applied.
	Matched string

	// Remaining is the suffix of the input path after the matched prefix,
	// or the whole path when only the default handler applied.
	Remaining string

	// Value is the resolved handler. It is the zero value when Found is
	// false.
	Value T

	// Found reports whether any handler was resolved, registered or
	// default.
	Found bool
}

// New returns an empty Matcher with no routes and no default handler.
func New[T any]() *Matcher[T] {
	m := &Matcher[T]{
		paths: substring.New[T](),
	}
	m.lengths.Store(&[]int{})

	return m
}

// AddPrefix registers handler under the given path prefix, overwriting any
// handler previously registered for the same prefix.
//
// Registering the path separator itself sets the default handler and
// creates no route. An empty prefix is rejected with ErrPrefixEmpty and a
// prefix ending in the separator with ErrPrefixTrailingSlash; on error the
// matcher is left unchanged.
func (m *Matcher[T]) AddPrefix(prefix string, handler T) error {
	if prefix == "" {
		return ErrPrefixEmpty
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if prefix == separator {
		m.defaultHandler.Store(&handler)
		return nil
	}

	if strings.HasSuffix(prefix, separator) {
		return ErrPrefixTrailingSlash
	}

	m.paths.Put(prefix, handler)
	m.rebuildLengths()

	return nil
}

// MustAddPrefix is like AddPrefix but panics on a registration error and
// returns the matcher for fluent chaining during startup wiring.
func (m *Matcher[T]) MustAddPrefix(prefix string, handler T) *Matcher[T] {
	if err := m.AddPrefix(prefix, handler); err != nil {
		panic(fmt.Sprintf("pathmatch: AddPrefix(%q): %v", prefix, err))
	}

	return m
}

// Match resolves path against the registered prefixes, longest first. It
// never fails: when no prefix matches, the result carries the default
// handler (which may itself be unset) with Matched set to the path
// separator and Remaining set to the whole path.
//
// Match is safe for concurrent use with registrations and takes no locks.
func (m *Matcher[T]) Match(path string) Match[T] {
	length := len(path)

	if lengths := m.lengths.Load(); lengths != nil {
		for _, prefixLen := range *lengths {
			switch {
			case prefixLen == length:
				// Exact match always wins over any shorter prefix.
				if entry, ok := m.paths.Get(path, length); ok {
					return Match[T]{
						Matched: path,
						Value:   entry.Value,
						Found:   true,
					}
				}

			case prefixLen < length:
				if entry, ok := m.paths.Get(path, prefixLen); ok {
					return Match[T]{
						Matched:   entry.Key,
						Remaining: path[prefixLen:],
						Value:     entry.Value,
						Found:     true,
					}
				}
			}
			// Prefixes longer than the path cannot match; skip the probe.
		}
	}

	result := Match[T]{
		Matched:   separator,
		Remaining: path,
	}

	if handler := m.defaultHandler.Load(); handler != nil {
		result.Value = *handler
		result.Found = true
	}

	return result
}

// DefaultHandler returns the current default handler and whether one has
// been set.
func (m *Matcher[T]) DefaultHandler() (T, bool) {
	if handler := m.defaultHandler.Load(); handler != nil {
		return *handler, true
	}

	var zero T

	return zero, false
}

// Len returns the number of registered prefixes. The default handler is
// not counted.
func (m *Matcher[T]) Len() int {
	if m.paths == nil {
		return 0
	}

	return m.paths.Size()
}

// Prefixes returns the currently registered prefixes in unspecified order.
func (m *Matcher[T]) Prefixes() []string {
	if m.paths == nil {
		return nil
	}

	return m.paths.Keys()
}

// rebuildLengths recomputes the distinct descending prefix lengths from the
// full key set and publishes the new snapshot. Callers must hold mu.
func (m *Matcher[T]) rebuildLengths() {
	keys := m.paths.Keys()

	seen := make(map[int]struct{}, len(keys))
	lengths := make([]int, 0, len(keys))

	for _, key := range keys {
		if _, ok := seen[len(key)]; !ok {
			seen[len(key)] = struct{}{}
			lengths = append(lengths, len(key))
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(lengths)))

	m.lengths.Store(&lengths)
}
