// Command hlsgrab loads an HLS multi-variant playlist, classifies its media
// components, lets the operator pick video renditions, downloads everything
// with ffmpeg stream copies, and prints the mkvmerge command that merges the
// pieces into one MKV.
package main
