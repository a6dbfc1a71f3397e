package game

import (
	"image/color"
	"time"

	"castledefenders/shared/protocol"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const noticeTTL = 4 * time.Second

type notice struct {
	text  string
	until time.Time
}

// NoticeBoard shows transient, non-blocking messages (rejected actions, wave
// banners) plus at most one sticky line for persistent conditions like a
// lost connection.
type NoticeBoard struct {
	items  []notice
	sticky string
	now    func() time.Time
}

func NewNoticeBoard() *NoticeBoard {
	return &NoticeBoard{now: time.Now}
}

func (nb *NoticeBoard) Add(s string) {
	if s == "" {
		return
	}
	nb.items = append(nb.items, notice{text: s, until: nb.now().Add(noticeTTL)})
	if len(nb.items) > 5 {
		nb.items = nb.items[len(nb.items)-5:]
	}
}

func (nb *NoticeBoard) SetSticky(s string) { nb.sticky = s }
func (nb *NoticeBoard) ClearSticky()       { nb.sticky = "" }

func (nb *NoticeBoard) Update() {
	now := nb.now()
	live := nb.items[:0]
	for _, n := range nb.items {
		if now.Before(n.until) {
			live = append(live, n)
		}
	}
	nb.items = live
}

// Lines returns what should be on screen right now, sticky line first.
func (nb *NoticeBoard) Lines() []string {
	var out []string
	if nb.sticky != "" {
		out = append(out, nb.sticky)
	}
	for _, n := range nb.items {
		out = append(out, n.text)
	}
	return out
}

func (nb *NoticeBoard) Draw(dst *ebiten.Image) {
	lines := nb.Lines()
	y := topBarH + 16
	for _, s := range lines {
		w := len(s)*7 + 16
		x := (protocol.ScreenW - w) / 2
		vector.DrawFilledRect(dst, float32(x), float32(y-12), float32(w), 18, color.NRGBA{0, 0, 0, 150}, false)
		text.Draw(dst, s, basicfont.Face7x13, x+8, y+1, color.NRGBA{255, 235, 180, 255})
		y += 22
	}
}
