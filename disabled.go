//go:build ulog_disable

package ulog

// enabled is false under -tags ulog_disable. Getters report zero values and
// no operation touches the sink.
const enabled = false
