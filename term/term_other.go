//go:build !linux && !darwin

// Package term answers whether a file descriptor is an interactive terminal.
package term

// IsTerminal reports whether fd refers to a terminal. Without termios
// support every descriptor is treated as a pipe.
func IsTerminal(fd int) bool {
	return false
}
