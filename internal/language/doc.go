// Package language normalizes the LANGUAGE attributes declared by HLS
// manifests (BCP-47 tags, possibly region-qualified) and resolves
// human-readable names for operator-facing output.
package language
