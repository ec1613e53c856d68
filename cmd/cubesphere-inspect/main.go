// Command cubesphere-inspect rasterizes a face quadtree's leaf occupancy
// to a PNG for visual debugging: one rectangle per leaf, shaded by lod.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"os"
	"strings"

	"github.com/cubesphere/planetgrid/chunkaddr"
	"github.com/cubesphere/planetgrid/face"
	"github.com/cubesphere/planetgrid/internal/profiling"
	"github.com/cubesphere/planetgrid/quadtree"
	ximagedraw "golang.org/x/image/draw"
)

func main() {
	faceName := flag.String("face", "+x", "face to inspect (+x, -x, +y, -y, +z, -z)")
	depth := flag.Int("depth", 4, "uniform subdivision depth from the root leaf")
	size := flag.Int("size", 512, "output image size in pixels (square)")
	out := flag.String("out", "quadtree.png", "output PNG path")
	flag.Parse()

	f, err := parseFace(*faceName)
	if err != nil {
		log.Fatal(err)
	}

	tree := quadtree.New(f)
	uniformSubdivide(tree, *depth)

	leaves := tree.AllLeaves()
	img := rasterizeSupersampled(leaves, *size)

	fh, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer fh.Close()
	if err := png.Encode(fh, img); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s: %d leaves across %d levels -> %s\n", f, len(leaves), *depth+1, *out)
	fmt.Println(profiling.TopN(5))
}

func parseFace(s string) (face.Face, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+x", "posx":
		return face.PosX, nil
	case "-x", "negx":
		return face.NegX, nil
	case "+y", "posy":
		return face.PosY, nil
	case "-y", "negy":
		return face.NegY, nil
	case "+z", "posz":
		return face.PosZ, nil
	case "-z", "negz":
		return face.NegZ, nil
	default:
		return 0, fmt.Errorf("cubesphere-inspect: unrecognized face %q", s)
	}
}

// uniformSubdivide subdivides every current leaf of tree depth times,
// breadth-first, so the result is a uniform grid at root.Lod-depth.
func uniformSubdivide(tree *quadtree.FaceQuadtree, depth int) {
	root := chunkaddr.New(tree.Face(), chunkaddr.MaxLod, 0, 0)
	frontier := []chunkaddr.ChunkAddress{root}
	for i := 0; i < depth; i++ {
		next := make([]chunkaddr.ChunkAddress, 0, len(frontier)*4)
		for _, a := range frontier {
			tree.Subdivide(a)
			children, _ := a.Children()
			next = append(next, children[:]...)
		}
		frontier = next
	}
}

// supersampleFactor is how much larger than the requested output the
// rectangles are drawn before being downsampled, so leaf outlines survive
// antialiasing instead of aliasing into a single pixel at coarse lods.
const supersampleFactor = 4

// rasterizeSupersampled draws one filled, outlined rectangle per leaf at
// supersampleFactor times the requested resolution, shaded by lod, then
// downsamples with a Catmull-Rom filter into the final size x size image.
func rasterizeSupersampled(leaves []chunkaddr.ChunkAddress, size int) *image.RGBA {
	big := size * supersampleFactor
	src := image.NewRGBA(image.Rect(0, 0, big, big))
	draw.Draw(src, src.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	for _, leaf := range leaves {
		u0, v0, u1, v1 := leaf.UVBounds()
		x0, y0 := int(u0*float64(big)), int((1-v1)*float64(big))
		x1, y1 := int(u1*float64(big)), int((1-v0)*float64(big))
		shade := leafShade(leaf.Lod)
		fillRect(src, x0, y0, x1, y1, shade)
		outlineRect(src, x0, y0, x1, y1, color.White)
	}

	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	ximagedraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), ximagedraw.Over, nil)
	return dst
}

func leafShade(lod int) color.RGBA {
	const maxShadeLod = 12
	l := lod
	if l > maxShadeLod {
		l = maxShadeLod
	}
	v := uint8(40 + (200 * l / maxShadeLod))
	return color.RGBA{R: 0, G: v, B: v / 2, A: 255}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	b := img.Bounds()
	for y := y0; y < y1; y++ {
		if y < b.Min.Y || y >= b.Max.Y {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < b.Min.X || x >= b.Max.X {
				continue
			}
			img.SetRGBA(x, y, c)
		}
	}
}

func outlineRect(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	b := img.Bounds()
	set := func(x, y int) {
		if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
			img.Set(x, y, c)
		}
	}
	for x := x0; x < x1; x++ {
		set(x, y0)
		set(x, y1-1)
	}
	for y := y0; y < y1; y++ {
		set(x0, y)
		set(x1-1, y)
	}
}
