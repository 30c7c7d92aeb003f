// Copyright (c) 2026 Mentorlink Team
// Mentorlink - mentorship matching service
// This source code is licensed under the MIT license found in the LICENSE file.

package core

import "github.com/mentorlink/mentorlink/internal/model"

// TransitionObserver is notified after a relation enters a new state.
type TransitionObserver func(state model.RelationState)

type options struct {
	clock    Clock
	observer TransitionObserver
}

// Option configures a service.
type Option func(*options)

// WithClock overrides the wall clock.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithTransitionObserver registers fn to be called on every successful
// state change. Creation reports PENDING; deletions are not reported.
func WithTransitionObserver(fn TransitionObserver) Option {
	return func(o *options) { o.observer = fn }
}

func buildOptions(opts []Option) options {
	o := options{clock: SystemClock}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) notify(state model.RelationState) {
	if o.observer != nil {
		o.observer(state)
	}
}
