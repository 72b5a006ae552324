package ica

// Hooks for white-box tests; see ortho_test.go.
var (
	Orthonormalize = orthonormalize
	ClipMin        = clipMin
)
