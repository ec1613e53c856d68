package topology

import "github.com/cubesphere/planetgrid/face"

// GenerateChunkIndices produces a triangle index buffer for a
// width x height grid of vertices (so (width-1) x (height-1) quads),
// laid out row-major with x the fast axis, consulting f's winding-flip
// entry so every emitted triangle winds outward after sphere projection.
func GenerateChunkIndices(f face.Face, width, height int) []uint32 {
	if width < 2 || height < 2 {
		return nil
	}
	flip := WindingFlip(f)

	quadsX, quadsY := width-1, height-1
	indices := make([]uint32, 0, quadsX*quadsY*6)

	vertex := func(x, y int) uint32 { return uint32(y*width + x) }

	for y := 0; y < quadsY; y++ {
		for x := 0; x < quadsX; x++ {
			v0 := vertex(x, y)
			v1 := vertex(x+1, y)
			v2 := vertex(x, y+1)
			v3 := vertex(x+1, y+1)

			// Triangle 1: v0,v1,v2 ; Triangle 2: v2,v1,v3 (shares the
			// v1-v2 diagonal), matching a standard quad-grid triangulation.
			if flip {
				indices = append(indices, v0, v2, v1, v2, v3, v1)
			} else {
				indices = append(indices, v0, v1, v2, v2, v1, v3)
			}
		}
	}
	return indices
}

// GenerateLODTransitionStrip builds the triangle strip that stitches a
// coarse chunk edge (coarseSamples vertices) to a finer neighbor edge
// (fineSamples vertices, fineSamples > coarseSamples, both sharing the
// same two endpoints) into a crack-free transition band. Vertex indices
// for the coarse edge are assumed to come first (0..coarseSamples-1),
// followed by the fine edge (coarseSamples..coarseSamples+fineSamples-1).
func GenerateLODTransitionStrip(f face.Face, coarseSamples, fineSamples int) []uint32 {
	if coarseSamples < 2 || fineSamples <= coarseSamples {
		return nil
	}
	flip := WindingFlip(f)

	indices := make([]uint32, 0, (fineSamples-1)*3)
	fineBase := uint32(coarseSamples)

	for i := 0; i < fineSamples-1; i++ {
		// Map the fine-edge segment [i, i+1] back to its enclosing
		// coarse-edge segment by linear proportion.
		coarseIdx := i * (coarseSamples - 1) / (fineSamples - 1)
		if coarseIdx >= coarseSamples-1 {
			coarseIdx = coarseSamples - 2
		}
		c0 := uint32(coarseIdx)
		c1 := uint32(coarseIdx + 1)
		f0 := fineBase + uint32(i)
		f1 := fineBase + uint32(i+1)

		if flip {
			indices = append(indices, c0, f1, f0)
		} else {
			indices = append(indices, c0, f0, f1)
		}
		// Emit the coarse-advancing triangle only when the fine segment
		// crosses into the next coarse segment, to avoid zero-area
		// duplicate triangles.
		nextCoarseIdx := (i + 1) * (coarseSamples - 1) / (fineSamples - 1)
		if nextCoarseIdx > coarseIdx {
			if flip {
				indices = append(indices, c0, c1, f1)
			} else {
				indices = append(indices, c0, f1, c1)
			}
		}
	}
	return indices
}
