// Package manifest models a multi-variant HLS playlist as an immutable
// object graph and loads it from a URL or local file. Only the master
// playlist level is parsed; media playlists are opaque URIs handed to the
// downloader.
package manifest
