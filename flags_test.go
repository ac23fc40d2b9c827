package mmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestProtBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(unix.PROT_NONE, protBits(Prot{}))
	assert.Equal(unix.PROT_READ, protBits(Prot{Read: true}))
	assert.Equal(
		unix.PROT_READ|unix.PROT_WRITE,
		protBits(Prot{Read: true, Write: true}),
	)
	assert.Equal(
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		protBits(Prot{Read: true, Write: true, Exec: true}),
	)
	assert.Equal(unix.PROT_EXEC, protBits(Prot{Exec: true}))
}

func TestVisibilityBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(unix.MAP_PRIVATE, visibilityBits(Private))
	assert.Equal(sharedValidatedBit, visibilityBits(SharedValidated))
	assert.NotEqual(visibilityBits(Private), visibilityBits(SharedValidated))

	assert.Panics(func() { visibilityBits(Visibility(42)) })
}

func TestAdvisoryBits(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, advisoryBits(AdvisoryFlags{}))
	assert.Equal(noReserveBit, advisoryBits(AdvisoryFlags{NoReserve: true}))
	assert.Equal(
		limit32Bit|lockedBit|noReserveBit,
		advisoryBits(AdvisoryFlags{
			Limit32Bit: true,
			Locked:     true,
			NoReserve:  true,
		}),
	)
}

func TestVisibilityString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("private", Private.String())
	assert.Equal("shared_validated", SharedValidated.String())
	assert.Panics(func() { _ = Visibility(42).String() })
}
