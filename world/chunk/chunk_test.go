package chunk

import (
	"testing"

	"github.com/stonebound/voxelterra/world/block"
)

func TestBlockRoundTrip(t *testing.T) {
	c := New()
	coords := [][3]int{
		{0, 0, 0}, {15, 15, 15}, {3, 7, 11}, {15, 0, 0}, {0, 15, 0}, {0, 0, 15},
	}
	for i, pos := range coords {
		c.SetBlock(pos[0], pos[1], pos[2], block.Block(1+i%6))
	}
	for i, pos := range coords {
		if got, want := c.Block(pos[0], pos[1], pos[2]), block.Block(1+i%6); got != want {
			t.Errorf("block at %v: got %v, want %v", pos, got, want)
		}
	}
}

func TestIndexBijection(t *testing.T) {
	seen := make(map[int]struct{}, Volume)
	for x := 0; x < Size; x++ {
		for y := 0; y < Size; y++ {
			for z := 0; z < Size; z++ {
				i := index(x, y, z)
				if i < 0 || i >= Volume {
					t.Fatalf("index(%v, %v, %v) = %v out of range", x, y, z, i)
				}
				if _, ok := seen[i]; ok {
					t.Fatalf("index(%v, %v, %v) = %v not unique", x, y, z, i)
				}
				seen[i] = struct{}{}
			}
		}
	}
}

func TestHighestBlock(t *testing.T) {
	c := New()
	if _, ok := c.HighestBlock(4, 4); ok {
		t.Error("empty column reported a highest block")
	}
	c.SetBlock(4, 2, 4, block.Stone)
	c.SetBlock(4, 9, 4, block.Grass)
	y, ok := c.HighestBlock(4, 4)
	if !ok || y != 9 {
		t.Errorf("highest block: got (%v, %v), want (9, true)", y, ok)
	}
}

func TestDirtyFlag(t *testing.T) {
	c := New()
	if !c.Dirty() {
		t.Error("fresh chunk not marked dirty")
	}
	c.ClearDirty()
	if c.Dirty() {
		t.Error("dirty flag not cleared")
	}
	c.MarkDirty()
	if !c.Dirty() {
		t.Error("dirty flag not set")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New()
	for i := 0; i < Volume; i += 7 {
		c.blocks[i] = block.Block(i % 8)
	}
	out, err := Decode(c.Encode())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.blocks != c.blocks {
		t.Error("decoded chunk differs from original")
	}
}

func TestDecodeRejectsBadData(t *testing.T) {
	if _, err := Decode(nil); err == nil {
		t.Error("decoding empty data did not fail")
	}
	if _, err := Decode(make([]byte, Volume)); err == nil {
		t.Error("decoding short data did not fail")
	}
	data := New().Encode()
	data[0] = 99
	if _, err := Decode(data); err == nil {
		t.Error("decoding unknown version did not fail")
	}
	data = New().Encode()
	data[100] = 200
	if _, err := Decode(data); err == nil {
		t.Error("decoding invalid block did not fail")
	}
}
