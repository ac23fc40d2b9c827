package mmap

import "golang.org/x/sys/unix"

const limit32Bit = unix.MAP_32BIT
