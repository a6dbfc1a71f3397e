package game

import (
	"fmt"
	"image/color"
	"time"

	"castledefenders/shared/protocol"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/time/rate"
)

// ChatPanel renders the match transcript and owns the input line. Sends are
// rate limited client-side so a held Enter key cannot flood the socket.
type ChatPanel struct {
	msgs    []protocol.ChatMsg
	input   string
	focused bool

	limit *rate.Limiter

	backspaceStart time.Time
	backspaceLast  time.Time
}

func NewChatPanel() *ChatPanel {
	return &ChatPanel{limit: rate.NewLimiter(rate.Every(time.Second), 3)}
}

func (c *ChatPanel) Append(m protocol.ChatMsg) {
	c.msgs = append(c.msgs, m)
	if len(c.msgs) > 100 {
		c.msgs = c.msgs[len(c.msgs)-100:]
	}
}

func (c *ChatPanel) Focused() bool { return c.focused }
func (c *ChatPanel) Blur()         { c.focused = false; c.input = "" }

// AllowSend consumes one token from the send limiter.
func (c *ChatPanel) AllowSend() bool { return c.limit.Allow() }

// Update captures keyboard input while focused. Returns the trimmed message
// to send when Enter commits a non-empty line.
func (c *ChatPanel) Update() (string, bool) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		if !c.focused {
			c.focused = true
			return "", false
		}
		msg := c.input
		c.input = ""
		c.focused = false
		if msg != "" {
			return msg, true
		}
		return "", false
	}
	if !c.focused {
		return "", false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		c.Blur()
		return "", false
	}

	if ebiten.IsKeyPressed(ebiten.KeyControl) && inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if s, err := clipboard.ReadAll(); err == nil {
			c.input += s
		}
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			if r >= 32 {
				c.input += string(r)
			}
		}
	}
	if len(c.input) > protocol.MaxChatLen {
		c.input = c.input[:protocol.MaxChatLen]
	}

	// Backspace with hold-to-repeat, same feel as the rest of the UI.
	if ebiten.IsKeyPressed(ebiten.KeyBackspace) {
		now := time.Now()
		if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
			c.delLast()
			c.backspaceStart = now
			c.backspaceLast = now
		} else if now.Sub(c.backspaceStart) > 350*time.Millisecond &&
			now.Sub(c.backspaceLast) > 40*time.Millisecond {
			c.delLast()
			c.backspaceLast = now
		}
	}
	return "", false
}

func (c *ChatPanel) delLast() {
	if len(c.input) > 0 {
		r := []rune(c.input)
		c.input = string(r[:len(r)-1])
	}
}

func (c *ChatPanel) Draw(dst *ebiten.Image) {
	baseY := protocol.ScreenH - shopBarH - 14
	n := len(c.msgs)
	start := n - chatLines
	if start < 0 {
		start = 0
	}
	y := baseY - (n-start)*16
	if c.focused {
		y -= 22
	}
	for _, m := range c.msgs[start:] {
		line := fmt.Sprintf("%s: %s", m.PlayerName, m.Message)
		if len(line) > 60 {
			line = line[:59] + "..."
		}
		vector.DrawFilledRect(dst, float32(pad-3), float32(y-11), float32(len(line)*7+6), 15, color.NRGBA{0, 0, 0, 110}, false)
		text.Draw(dst, line, basicfont.Face7x13, pad, y, color.NRGBA{225, 225, 225, 255})
		y += 16
	}
	if c.focused {
		vector.DrawFilledRect(dst, float32(pad-3), float32(baseY-14), 440, 20, color.NRGBA{20, 20, 30, 220}, false)
		vector.StrokeRect(dst, float32(pad-3), float32(baseY-14), 440, 20, 1, color.NRGBA{120, 120, 160, 255}, false)
		text.Draw(dst, "> "+c.input+"_", basicfont.Face7x13, pad, baseY, color.White)
	} else {
		text.Draw(dst, "[Enter] chat", basicfont.Face7x13, pad, baseY, color.NRGBA{160, 160, 160, 180})
	}
}
