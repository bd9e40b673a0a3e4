package config

import (
	"errors"
	"time"
)

// EventKind names the observable steps of a load pass.
type EventKind string

const (
	// EventFileLoaded fires after a discovered override file has been
	// executed and its symbols harvested.
	EventFileLoaded EventKind = "file_loaded"
	// EventAttributeSet fires for every attribute write during a load pass.
	EventAttributeSet EventKind = "attribute_set"
)

// LoadEvent describes one observable step of a load pass.
type LoadEvent struct {
	Kind       EventKind
	Pass       string
	File       string
	Attribute  string
	Previous   string
	Value      string
	OccurredAt time.Time
}

// LoadHook receives load events.
type LoadHook interface {
	Notify(event LoadEvent) error
}

// HookFunc allows plain functions to satisfy LoadHook.
type HookFunc func(event LoadEvent) error

// Notify dispatches to the underlying function.
func (fn HookFunc) Notify(event LoadEvent) error {
	if fn == nil {
		return nil
	}
	return fn(event)
}

// Hooks fans out events to zero or more hooks.
type Hooks []LoadHook

// Enabled reports whether there are any hooks to notify.
func (h Hooks) Enabled() bool {
	return len(h) > 0
}

// Notify forwards the event to all hooks, returning a joined error if any
// fail. Hook failures never abort a load pass; callers log and continue.
func (h Hooks) Notify(event LoadEvent) error {
	if len(h) == 0 {
		return nil
	}

	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}

	var errs []error
	for _, hook := range h {
		if hook == nil {
			continue
		}
		if err := hook.Notify(event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errors.Join(errs...)
}
