package storage

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/voxelworks/voxlight/internal/world"
)

// Snapshot layout: 4-byte magic, 8-byte xxhash64 of the raw payload, then the
// zstd-compressed payload. The payload is little-endian: chunk coords, size,
// height, then the four channel arrays in order.
var snapshotMagic = [4]byte{'V', 'X', 'L', '1'}

const snapshotHeaderLen = 4 + 8

// EncodeChunkLight serializes light data into a compressed snapshot frame.
func EncodeChunkLight(l *world.ChunkLight) ([]byte, error) {
	n := l.Size * l.Height * l.Size
	raw := make([]byte, 0, 24+4*n)

	var hdr [24]byte
	binary.LittleEndian.PutUint64(hdr[0:], uint64(int64(l.Coords.X)))
	binary.LittleEndian.PutUint64(hdr[8:], uint64(int64(l.Coords.Z)))
	binary.LittleEndian.PutUint32(hdr[16:], uint32(l.Size))
	binary.LittleEndian.PutUint32(hdr[20:], uint32(l.Height))
	raw = append(raw, hdr[:]...)
	raw = append(raw, l.Sunlight...)
	raw = append(raw, l.Red...)
	raw = append(raw, l.Green...)
	raw = append(raw, l.Blue...)

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	defer enc.Close()

	out := make([]byte, snapshotHeaderLen, snapshotHeaderLen+len(raw)/4)
	copy(out[:4], snapshotMagic[:])
	binary.LittleEndian.PutUint64(out[4:], xxhash.Sum64(raw))
	return enc.EncodeAll(raw, out), nil
}

// DecodeChunkLight parses a snapshot frame, verifying the payload checksum.
func DecodeChunkLight(data []byte) (*world.ChunkLight, error) {
	if len(data) < snapshotHeaderLen || [4]byte(data[:4]) != snapshotMagic {
		return nil, fmt.Errorf("not a light snapshot")
	}
	wantSum := binary.LittleEndian.Uint64(data[4:])

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data[snapshotHeaderLen:], nil)
	if err != nil {
		return nil, fmt.Errorf("decompress light snapshot: %w", err)
	}
	if got := xxhash.Sum64(raw); got != wantSum {
		return nil, fmt.Errorf("light snapshot checksum mismatch: got %016x, want %016x", got, wantSum)
	}
	if len(raw) < 24 {
		return nil, fmt.Errorf("light snapshot payload truncated")
	}

	coords := world.ChunkPos{
		X: int(int64(binary.LittleEndian.Uint64(raw[0:]))),
		Z: int(int64(binary.LittleEndian.Uint64(raw[8:]))),
	}
	size := int(binary.LittleEndian.Uint32(raw[16:]))
	height := int(binary.LittleEndian.Uint32(raw[20:]))
	n := size * height * size
	if size <= 0 || height <= 0 || len(raw) != 24+4*n {
		return nil, fmt.Errorf("light snapshot payload has %d bytes, want %d for %dx%d", len(raw)-24, 4*n, size, height)
	}

	l := world.NewChunkLight(coords, size, height)
	copy(l.Sunlight, raw[24:])
	copy(l.Red, raw[24+n:])
	copy(l.Green, raw[24+2*n:])
	copy(l.Blue, raw[24+3*n:])
	return l, nil
}
