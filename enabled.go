//go:build !ulog_disable

package ulog

// enabled is true in normal builds. Building with -tags ulog_disable turns
// every logging operation into an empty body the linker strips, leaving a
// near-zero footprint.
const enabled = true
