//go:build linux && !amd64

package mmap

// MAP_32BIT is an x86-64 kernel flag; elsewhere the request translates
// to nothing.
const limit32Bit = 0
