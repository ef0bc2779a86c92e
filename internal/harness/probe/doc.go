// Package probe is empty on disk. The harness overlays a generated file into
// it for each suite it type-checks, so that probes see the module's exported
// API exactly as an importing package would.
package probe
