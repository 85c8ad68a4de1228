package main

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/blockfall/debugui"
	debugui_ebiten "github.com/plus3/blockfall/debugui/ebiten"
	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"go.uber.org/zap"
)

const (
	boardOffsetX = 40
	boardOffsetY = 40
	panelWidth   = 160
)

var (
	backgroundColor = color.RGBA{20, 20, 28, 255}
	emptyCellColor  = color.RGBA{36, 36, 48, 255}
	gridLineColor   = color.RGBA{0, 0, 0, 255}
	borderColor     = color.RGBA{130, 130, 130, 255}
)

// Game implements ebiten.Game. It never touches the tetris engine directly:
// input goes through the session and drawing reads the published state.
type Game struct {
	ctx      context.Context
	session  *session.Session
	logger   *zap.SugaredLogger
	cellSize int
	ghost    bool

	running atomic.Bool

	imguiBackend *debugui_ebiten.ImguiBackend
	overlay      *debugui.Overlay
}

// startRunner launches the session loop unless one is already running.
func (g *Game) startRunner() {
	if !g.running.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer g.running.Store(false)
		if err := g.session.Run(g.ctx); err != nil && !errors.Is(err, context.Canceled) {
			g.logger.Errorw("session loop failed", "error", err)
		}
	}()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	if g.imguiBackend != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			g.overlay.Toggle()
		}
		g.imguiBackend.Update(g.overlay)
		if g.overlay.Input().WantCaptureKeyboard {
			return nil
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Apply(session.Restart)
	}
	g.submit(commandsFor(inpututil.IsKeyJustPressed))

	if !g.running.Load() && !g.session.State().Over {
		g.startRunner()
	}
	return nil
}

// submit queues cmds for the runner. A finished game takes no input until R
// restarts it.
func (g *Game) submit(cmds []session.Command) {
	for _, cmd := range cmds {
		err := g.session.Submit(g.ctx, cmd)
		if errors.Is(err, session.ErrGameOver) {
			return
		}
		if err != nil {
			g.logger.Warnw("dropped command", "command", cmd, "error", err)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	st := g.session.State()
	g.drawBoard(screen, st)
	g.drawPanel(screen, st)

	if g.imguiBackend != nil {
		g.imguiBackend.Draw(screen)
	}
}

func (g *Game) drawBoard(screen *ebiten.Image, st session.State) {
	board := st.Board
	size := float32(g.cellSize)
	w := float32(board.Width()) * size
	h := float32(board.Height()) * size

	vector.StrokeRect(screen, boardOffsetX-2, boardOffsetY-2, w+4, h+4, 2, borderColor, false)

	for y := range board.Height() {
		for x := range board.Width() {
			c := emptyCellColor
			if t := board.Get(x, y); t != tetris.Empty {
				c = cellColor(t)
			}
			g.drawCell(screen, x, y, c)
		}
	}

	if g.ghost && st.HasActive {
		ghost := st.Active
		ghost.Y = st.GhostY
		for _, cell := range ghost.Cells() {
			if cell[1] < 0 || board.Get(cell[0], cell[1]) != tetris.Empty {
				continue
			}
			c := cellColor(ghost.Type)
			c.A = 70
			g.drawCell(screen, cell[0], cell[1], c)
		}
	}
}

func (g *Game) drawCell(screen *ebiten.Image, x, y int, c color.RGBA) {
	size := float32(g.cellSize)
	sx := float32(boardOffsetX) + float32(x)*size
	sy := float32(boardOffsetY) + float32(y)*size
	vector.DrawFilledRect(screen, sx, sy, size, size, c, false)
	vector.StrokeRect(screen, sx, sy, size, size, 1, gridLineColor, false)
}

func (g *Game) drawPanel(screen *ebiten.Image, st session.State) {
	textX := boardOffsetX + st.Board.Width()*g.cellSize + 30
	y := boardOffsetY

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE\n%d", st.Score), textX, y)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL\n%d", st.Level), textX, y+50)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES\n%d", st.Lines), textX, y+100)
	ebitenutil.DebugPrintAt(screen, "NEXT", textX, y+150)

	preview := tetris.Piece{Type: st.Next}
	size := float32(g.cellSize) / 2
	for _, cell := range preview.Cells() {
		sx := float32(textX) + float32(cell[0])*size
		sy := float32(y+175) + float32(cell[1]+1)*size
		vector.DrawFilledRect(screen, sx, sy, size, size, cellColor(st.Next), false)
	}

	if st.Over {
		midY := boardOffsetY + st.Board.Height()*g.cellSize/2
		ebitenutil.DebugPrintAt(screen, "GAME OVER", boardOffsetX+20, midY-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", boardOffsetX+10, midY+10)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imguiBackend != nil {
		g.imguiBackend.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func cellColor(t tetris.Type) color.RGBA {
	return tetris.MustLookup(t).Color
}

func windowSize(boardWidth, boardHeight, cellSize int) (int, int) {
	return boardOffsetX*2 + boardWidth*cellSize + panelWidth, boardOffsetY*2 + boardHeight*cellSize
}
