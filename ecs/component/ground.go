package component

// GroundPiece is the visual variant of a ground block, chosen from its
// horizontal Ground neighbors.
type GroundPiece int

const (
	GroundMiddle GroundPiece = iota
	GroundLeftEdge
	GroundRightEdge
	GroundIsolated
)

// Atlas frames for each piece in the ground sheet (7 columns per row).
const (
	GroundFrameMiddle    = 1*7 + 1
	GroundFrameLeftEdge  = 1*7 + 0
	GroundFrameRightEdge = 1*7 + 2
	GroundFrameIsolated  = 1*7 + 3
)

// GroundPieceFor maps neighbor presence to a piece.
func GroundPieceFor(hasLeft, hasRight bool) GroundPiece {
	switch {
	case !hasLeft && !hasRight:
		return GroundIsolated
	case !hasLeft:
		return GroundLeftEdge
	case !hasRight:
		return GroundRightEdge
	default:
		return GroundMiddle
	}
}

// Frame returns the atlas frame for the piece.
func (p GroundPiece) Frame() int {
	switch p {
	case GroundLeftEdge:
		return GroundFrameLeftEdge
	case GroundRightEdge:
		return GroundFrameRightEdge
	case GroundIsolated:
		return GroundFrameIsolated
	default:
		return GroundFrameMiddle
	}
}

func (p GroundPiece) String() string {
	switch p {
	case GroundLeftEdge:
		return "left_edge"
	case GroundRightEdge:
		return "right_edge"
	case GroundIsolated:
		return "isolated"
	default:
		return "middle"
	}
}

// Ground is attached to every ground block; it never changes after the level
// is instantiated.
type Ground struct {
	Piece GroundPiece
}

var GroundComponent = NewComponent[Ground]()
