// Package events lets the session store announce state transitions to
// observers without depending on them.
//
// The primary components are:
// - StateChangedEvent: a summary of the session after one transition
// - EventHandler: interface for components that react to events
// - InMemoryEventEmitter: synchronous fan-out to registered handlers
package events
