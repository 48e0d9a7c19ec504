package board

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"castellan/position"
)

var (
	drawLightCell = color.New(color.FgBlack, color.BgHiGreen)
	drawDarkCell  = color.New(color.FgBlack, color.BgHiWhite)
	drawLabel     = color.New(color.Bold)
)

// Draw returns a checkered terminal rendering of the board.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for r := Width - 1; r >= 0; r-- {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", r.RankNotation()))
		for f := position.Pos(0); f < Width; f++ {
			sq := b.squares[r*Width+f]
			sym := " "
			if !sq.IsEmpty() {
				sym = sq.Piece.SymbolUnicode(sq.Side)
			}
			cell := drawDarkCell
			if (f+r)%2 == 1 {
				cell = drawLightCell
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for f := position.Pos(0); f < Width; f++ {
		_, _ = builder.WriteString(drawLabel.Sprintf(" %s ", f.FileNotation()))
	}
	_, _ = builder.WriteString(fmt.Sprintf("\n %s to move", b.turn))
	return builder.String()
}
