package game

import (
	"testing"

	"castledefenders/shared/protocol"
)

func TestChatSendLimiterAllowsBurstThenBlocks(t *testing.T) {
	c := NewChatPanel()

	allowed := 0
	for i := 0; i < 10; i++ {
		if c.AllowSend() {
			allowed++
		}
	}
	// Burst of 3, refill is one per second; a tight loop gets exactly the burst.
	if allowed != 3 {
		t.Errorf("allowed %d sends in a burst, want 3", allowed)
	}
}

func TestChatTranscriptCapped(t *testing.T) {
	c := NewChatPanel()
	for i := 0; i < 150; i++ {
		c.Append(protocol.ChatMsg{PlayerName: "p", Message: "m"})
	}
	if len(c.msgs) != 100 {
		t.Errorf("transcript holds %d messages, want cap of 100", len(c.msgs))
	}
}

func TestChatBlurClearsInput(t *testing.T) {
	c := NewChatPanel()
	c.focused = true
	c.input = "half-typed"

	c.Blur()

	if c.Focused() || c.input != "" {
		t.Errorf("Blur left focused=%v input=%q", c.Focused(), c.input)
	}
}
