// Package mux synthesizes the mkvmerge invocation that combines downloaded
// video, audio, and subtitle components into one MKV container. Synthesis is
// a pure function over track records; it never inspects the filesystem and
// never executes the tool.
package mux
