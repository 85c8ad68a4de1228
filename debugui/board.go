package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
)

// StateSource is implemented by *session.Session.
type StateSource interface {
	State() session.State
	Apply(cmd session.Command) bool
}

// BoardWindow shows the published game state and lets the user apply commands
// directly, bypassing the tick.
type BoardWindow struct {
	source   StateSource
	cellSize float32
}

func NewBoardWindow(source StateSource, cellSize float32) *BoardWindow {
	return &BoardWindow{source: source, cellSize: cellSize}
}

func (w *BoardWindow) Render() {
	imgui.SetNextWindowPosV(imgui.NewVec2(440, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 520), imgui.CondOnce)
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	st := w.source.State()

	if st.Over {
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	} else {
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	}
	imgui.Text(fmt.Sprintf("Seq: %d", st.Seq))
	imgui.Text(fmt.Sprintf("Score: %d  Lines: %d  Level: %d", st.Score, st.Lines, st.Level))

	imgui.Text("Next:")
	imgui.SameLine()
	imgui.PushStyleColorVec4(imgui.ColText, typeColor(st.Next))
	imgui.Text(st.Next.String())
	imgui.PopStyleColor()

	if st.HasActive {
		imgui.Text(fmt.Sprintf("Active: %s rot %d at (%d,%d)", st.Active.Type, st.Active.Rotation, st.Active.X, st.Active.Y))
		imgui.Text(fmt.Sprintf("Ghost Row: %d", st.GhostY))
	}

	imgui.Separator()
	w.renderCommands()
	imgui.Separator()
	w.renderGrid(st.Board)

	imgui.End()
}

func (w *BoardWindow) renderCommands() {
	for i, cmd := range session.Commands() {
		if i%4 != 0 {
			imgui.SameLine()
		}
		if imgui.Button(cmd.String()) {
			w.source.Apply(cmd)
		}
	}
}

func (w *BoardWindow) renderGrid(board *tetris.Snapshot) {
	drawList := imgui.WindowDrawList()
	origin := imgui.CursorScreenPos()
	empty := imgui.ColorU32Vec4(imgui.NewVec4(0.15, 0.15, 0.15, 1.0))

	for y := range board.Height() {
		for x := range board.Width() {
			topLeft := imgui.NewVec2(origin.X+float32(x)*w.cellSize, origin.Y+float32(y)*w.cellSize)
			bottomRight := imgui.NewVec2(topLeft.X+w.cellSize-1, topLeft.Y+w.cellSize-1)

			fill := empty
			if t := board.Get(x, y); t != tetris.Empty {
				fill = imgui.ColorU32Vec4(typeColor(t))
			}
			drawList.AddRectFilled(topLeft, bottomRight, fill)
		}
	}

	imgui.Dummy(imgui.NewVec2(float32(board.Width())*w.cellSize, float32(board.Height())*w.cellSize))
}

func typeColor(t tetris.Type) imgui.Vec4 {
	def, err := tetris.Lookup(t)
	if err != nil {
		return imgui.NewVec4(0.5, 0.5, 0.5, 1.0)
	}
	return rgbaVec(def.Color)
}

func rgbaVec(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}
