package chunkaddr

import "github.com/cubesphere/planetgrid/face"

// Pack encodes a into a single uint64 key: face in the top 3 bits, lod in
// the next 5 bits, then 28 bits of x and 28 bits of y. This fits MaxLod=20
// (5 bits covers up to 31) and grid coordinates up to 1<<28 (lod 0's grid
// is 1<<20, well within range), giving a compact key for disk and network
// use alongside the 4-field struct form.
func (a ChunkAddress) Pack() uint64 {
	return uint64(a.Face)<<61 |
		uint64(a.Lod)<<56 |
		uint64(a.X)<<28 |
		uint64(a.Y)
}

// UnpackChunkAddress decodes a key produced by Pack. It panics if the
// decoded fields do not form a valid address.
func UnpackChunkAddress(key uint64) ChunkAddress {
	f := face.Face(key >> 61 & 0x7)
	lod := int(key >> 56 & 0x1F)
	x := int(key >> 28 & 0xFFFFFFF)
	y := int(key & 0xFFFFFFF)
	return New(f, lod, x, y)
}
