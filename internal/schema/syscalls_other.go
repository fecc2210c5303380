//go:build !linux && !darwin && !freebsd

package schema

// Unix is a placeholder on platforms without the stat and statfs calls the
// probes rely on. Operations needing it report themselves as not implemented.
type Unix struct{}
