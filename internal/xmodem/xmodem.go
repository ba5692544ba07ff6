// Package xmodem pins the CRC-16/XMODEM parameters (poly 0x1021, init
// 0x0000, no input/output reflection) used for the BSB frame trailer.
// The standard library has no CRC-16 variant at all, so the checksum
// comes from github.com/snksoft/crc, as in the lab-instrument serial
// tooling it was grounded on.
package xmodem

import "github.com/snksoft/crc"

// params spells out CRC-16/XMODEM explicitly rather than relying on a
// library-provided shorthand: polynomial 0x1021, zero initial value,
// no input or output reflection, zero final xor.
var params = &crc.Parameters{
	Width:      16,
	Polynomial: 0x1021,
	Init:       0x0000,
	ReflectIn:  false,
	ReflectOut: false,
	FinalXor:   0x0000,
}

// Checksum computes the CRC-16/XMODEM of data.
func Checksum(data []byte) uint16 {
	return uint16(crc.CalculateCRC(params, data))
}
