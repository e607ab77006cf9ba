// Package services provides shared error classification helpers used by
// the command layer and the external-tool collaborators.
package services
