// Package driver selects a gl.Functions implementation by name.
//
// Two drivers are built in: "soft", an in-memory model that follows the
// rules of whatever profile it is opened with, and "native", a real
// context created through EGL (Linux only). Other packages may register
// more from init functions.
package driver

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/gogpu/glhal"
	"github.com/gogpu/glhal/gl"
	"github.com/gogpu/glhal/profile"
)

// Driver names.
const (
	Native = "native"
	Soft   = "soft"
)

// ErrNotAvailable is returned when no driver of the requested name is
// registered.
var ErrNotAvailable = errors.New("driver: not available")

// Driver is an open GL context.
type Driver interface {
	gl.Functions

	// Profile describes what the driver actually provides, which may
	// differ in capabilities from the profile it was opened with.
	Profile() profile.Profile

	// Close releases the context. The driver must not be used afterwards.
	Close() error
}

// Factory opens a driver for the requested profile.
type Factory func(want profile.Profile) (Driver, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default: first driver that opens wins.
	priority = []string{Native, Soft}
)

// Register registers a driver factory under name, replacing any previous
// registration.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = f
}

// Unregister removes a driver. Useful in tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered driver names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// IsRegistered reports whether a driver named name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Open opens the driver registered as name.
func Open(name string, want profile.Profile) (Driver, error) {
	registryMu.RLock()
	f, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotAvailable, name)
	}
	d, err := f(want)
	if err != nil {
		return nil, fmt.Errorf("driver: open %s: %w", name, err)
	}
	glhal.Logger().Debug("driver: opened", "name", name, "profile", d.Profile().String())
	return d, nil
}

// Default opens the first driver in priority order (native, then soft)
// that succeeds, then any other registered driver.
func Default(want profile.Profile) (Driver, error) {
	names := Available()
	order := make([]string, 0, len(names))
	for _, n := range priority {
		if slices.Contains(names, n) {
			order = append(order, n)
		}
	}
	for _, n := range names {
		if !slices.Contains(order, n) {
			order = append(order, n)
		}
	}

	var errs []error
	for _, name := range order {
		d, err := Open(name, want)
		if err == nil {
			return d, nil
		}
		glhal.Logger().Warn("driver: open failed", "name", name, "err", err)
		errs = append(errs, err)
	}
	if len(errs) == 0 {
		return nil, ErrNotAvailable
	}
	return nil, errors.Join(errs...)
}
