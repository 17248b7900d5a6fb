package utils

var (
	G_debug bool
	// G_exit runs in reverse order when the program exits.
	G_exit []func()
)
