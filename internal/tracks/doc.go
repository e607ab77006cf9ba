// Package tracks turns the loosely-typed manifest object graph into typed
// track records: classification of media alternatives, the rendition catalog
// shown to the operator, and resolution of the operator's rendition
// selection. All operations are pure and perform no I/O.
package tracks
