package pattern

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gol-editor/pkg/core"
)

var board = core.Size{W: 20, H: 10}

const glider = `!Name: Glider
!https://conwaylife.com/wiki/Glider
.O
..O
OOO`

func TestDecodeStripsLeadingComments(t *testing.T) {
	got := Decode(glider, board, 0)
	assert.Equal(t, []int{1, 22, 40, 41, 42}, got)

	rows := Rows(glider)
	require.Len(t, rows, 3)
	assert.Equal(t, ".O", rows[0])
}

func TestDecodeOnlyStripsLeadingComments(t *testing.T) {
	got := Decode("O\n!O\nO", board, 0)
	assert.Equal(t, []int{0, 21, 40}, got)
}

func TestDecodeOrigin(t *testing.T) {
	byIndex := Decode("OO", board, 45)
	byCoord := DecodeAt("OO", board, 5, 2)
	assert.Equal(t, []int{45, 46}, byIndex)
	assert.Equal(t, byIndex, byCoord)
}

func TestDecodeIsLenient(t *testing.T) {
	got := Decode("xO*\r\n o\r\nO", board, 0)
	assert.Equal(t, []int{1, 40}, got)
	assert.Empty(t, Decode("", board, 0))
	assert.Empty(t, Decode("!only a comment", board, 0))
}

func TestEncode(t *testing.T) {
	cells := Decode(glider, board, board.Index(4, 3))
	assert.Equal(t, ".O.\n..O\nOOO", Encode(cells, board))
	assert.Equal(t, "", Encode(nil, board))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rng := core.NewRNG(3)
	for i := 0; i < 100; i++ {
		set := rng.Sample(board.Area(), 1+rng.IntN(40))
		slices.Sort(set)

		tl, _ := BoundingBox(set, board)
		got := Decode(Encode(set, board), board, board.Index(tl.X, tl.Y))
		if !slices.Equal(set, got) {
			t.Fatalf("round trip mismatch\nwant %v\n got %v", set, got)
		}
	}
}

func TestEncodeDecodeAnchoredAtOrigin(t *testing.T) {
	set := []int{0, 2, 21, 40, 43}
	assert.Equal(t, set, Decode(Encode(set, board), board, 0))
}

func TestBoundingBox(t *testing.T) {
	tl, br := BoundingBox([]int{board.Index(7, 2), board.Index(3, 5), board.Index(9, 4)}, board)
	assert.Equal(t, core.Coord{X: 3, Y: 2}, tl)
	assert.Equal(t, core.Coord{X: 9, Y: 5}, br)

	tl, br = BoundingBox(nil, board)
	assert.Equal(t, core.Coord{}, tl)
	assert.Equal(t, core.Coord{}, br)
}

func TestBoxAnyCornerOrder(t *testing.T) {
	a := Box(core.Coord{X: 1, Y: 1}, core.Coord{X: 2, Y: 2}, board)
	b := Box(core.Coord{X: 2, Y: 1}, core.Coord{X: 1, Y: 2}, board)
	assert.Equal(t, []int{21, 22, 41, 42}, a)
	assert.Equal(t, a, b)

	clipped := Box(core.Coord{X: -3, Y: -3}, core.Coord{X: 0, Y: 0}, board)
	assert.Equal(t, []int{0}, clipped)
	assert.Empty(t, Box(core.Coord{X: 30, Y: 0}, core.Coord{X: 40, Y: 1}, board))
}

func TestTrim(t *testing.T) {
	in := "!padded\n.....\n..O..\n...O.\n.OOO.\n....."
	assert.Equal(t, ".O.\n..O\nOOO", Trim(in))
	assert.Equal(t, "", Trim("...\n..."))
}

func TestActiveWindow(t *testing.T) {
	tl, br, ok := ActiveWindow([]int{board.Index(0, 0), board.Index(4, 3)}, board)
	require.True(t, ok)
	assert.Equal(t, core.Coord{X: 0, Y: 0}, tl)
	assert.Equal(t, core.Coord{X: 5, Y: 4}, br)

	tl, br, ok = ActiveWindow([]int{board.Index(19, 9)}, board)
	require.True(t, ok)
	assert.Equal(t, core.Coord{X: 18, Y: 8}, tl)
	assert.Equal(t, core.Coord{X: 19, Y: 9}, br)

	_, _, ok = ActiveWindow(nil, board)
	assert.False(t, ok)
}

func TestLivingDropsOffBoardCells(t *testing.T) {
	got := Living("OO\nOO", board, board.Index(19, 9))
	assert.Equal(t, []int{board.Index(19, 9)}, got)
}
