package game

import "testing"

func TestDisconnectResetsInteractionState(t *testing.T) {
	g := &Game{
		store:   NewStore(),
		sel:     NewSelection(),
		notices: NewNoticeBoard(),
		chat:    NewChatPanel(),
		connSt:  stateConnected,
	}
	g.sel.selectType("cannon")
	g.chat.focused = true
	g.chat.input = "mid-sentence"

	g.onDisconnected()

	if g.connSt != stateFailed {
		t.Errorf("connSt = %v, want stateFailed", g.connSt)
	}
	if g.sel.TowerType != "" || g.sel.PlotID != -1 {
		t.Errorf("selection survived disconnect: %+v", g.sel)
	}
	if g.chat.Focused() {
		t.Error("chat still focused after disconnect")
	}
	if lines := g.notices.Lines(); len(lines) == 0 {
		t.Error("no sticky disconnect notice")
	}
	if g.connRetryAt.IsZero() {
		t.Error("no retry scheduled")
	}
}
