package gzoe

import "hash/crc32"

// CRC32 accumulates the gzip trailer's CRC-32 (RFC 1952 §2.3.1, IEEE
// polynomial, reflected) over every byte of uncompressed input as it is
// read, so the driver never needs to buffer the whole stream to produce
// the trailer.
type CRC32 struct {
	state uint32
}

// Write folds p into the running CRC. It never returns an error, matching
// the hash.Hash32 contract this mirrors.
func (c *CRC32) Write(p []byte) (int, error) {
	c.state = crc32.Update(c.state, crc32.IEEETable, p)
	return len(p), nil
}

// Sum32 returns the CRC-32 of every byte written so far.
func (c *CRC32) Sum32() uint32 {
	return c.state
}
