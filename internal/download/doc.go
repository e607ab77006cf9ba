// Package download turns classified track records into (URI, file name)
// fetch pairs and executes them with ffmpeg stream copies into the
// configured downloads directory.
package download
