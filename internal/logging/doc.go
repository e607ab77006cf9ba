// Package logging wires slog with the console and JSON handlers used across
// hlsgrab. Components obtain loggers through NewComponentLogger so every
// record carries a component attribute.
package logging
