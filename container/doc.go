// Package container holds the registration set the extension engine writes
// into and a small lifetime-aware provider that resolves instances from it.
//
// The engine only ever appends entries to a Collection or asks whether an
// entry for a capability exists. Building and caching instances is the job
// of the Provider, which hosts create once all registrations are final.
package container
