// Package history persists completed runs in a local SQLite database so
// operators can review what was fetched and which mux command was produced.
package history
