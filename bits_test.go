package gzoe

import (
	"bufio"
	"bytes"
	"testing"
)

func TestPushBitsLSBFirst(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(bufio.NewWriter(&buf))
	bw.PushBits(0x5, 3) // 101, written low-bit first: bits 1,0,1
	bw.Flush()

	want := byte(0x5) // low 3 bits already equal 101 when read LSB-first
	if got := buf.Bytes()[0]; got != want {
		t.Errorf("got %#08b, want %#08b", got, want)
	}
}

func TestPushCodeMSBFirst(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(bufio.NewWriter(&buf))
	// 3-bit code 0b110 written MSB-first should land in the stream as bits
	// 1,1,0 in that order, i.e. occupying the low 3 bits of the byte as 0b011
	// once read back LSB-first by a decoder (bit 0 = 1, bit 1 = 1, bit 2 = 0).
	bw.PushCode(0b110, 3)
	bw.Flush()

	got := buf.Bytes()[0]
	for i, want := range []byte{1, 1, 0} {
		bit := (got >> uint(i)) & 1
		if bit != want {
			t.Errorf("bit %d = %d, want %d (byte=%#08b)", i, bit, want, got)
		}
	}
}

func TestPushByteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(bufio.NewWriter(&buf))
	bw.PushByte(0xAB)
	bw.Flush()
	if got := buf.Bytes()[0]; got != 0xAB {
		t.Errorf("got %#x, want 0xAB", got)
	}
}

func TestPushUint32LELittleEndian(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(bufio.NewWriter(&buf))
	bw.PushUint32LE(0x01020304)
	bw.Flush()

	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("got %x, want %x", buf.Bytes(), want)
	}
}

func TestAlignToBytePadsWithZeros(t *testing.T) {
	var buf bytes.Buffer
	bw := NewBitWriter(bufio.NewWriter(&buf))
	bw.PushBits(1, 1)
	bw.AlignToByte()
	bw.Flush()

	if len(buf.Bytes()) != 1 {
		t.Fatalf("want exactly 1 byte, got %d", len(buf.Bytes()))
	}
	if got := buf.Bytes()[0]; got != 1 {
		t.Errorf("got %#08b, want %#08b", got, 1)
	}
}
