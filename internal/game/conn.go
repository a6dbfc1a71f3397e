package game

import (
	"log"
	"time"

	"castledefenders/internal/netcfg"
)

func (g *Game) retryConnect() {
	if g.connectInFlight {
		return
	}
	g.connSt = stateConnecting
	g.connErrMsg = ""
	g.connectInFlight = true
	go g.connectAsync()
}

func (g *Game) connectAsync() {
	// Single in-flight dial guarded by connectInFlight
	n, err := NewNet(netcfg.ServerURL)
	// send result without blocking forever; drop oldest on overflow
	select {
	case g.connCh <- connResult{n: n, err: err}:
	default:
		select {
		case <-g.connCh:
		default:
		}
		g.connCh <- connResult{n: n, err: err}
	}
	g.connectInFlight = false
}

// send is the safe outbound wrapper; a dead socket turns into a log line,
// never a fault.
func (g *Game) send(typ string, payload interface{}) {
	if g.net == nil || g.net.IsClosed() {
		log.Printf("NET: send(%s) skipped, not connected", typ)
		return
	}
	if err := g.net.Send(typ, payload); err != nil {
		log.Printf("NET: send(%s) failed: %v", typ, err)
	}
}

// onDisconnected suspends interaction until a fresh gameJoined reinitializes
// everything. In-flight actions are not retried; the rejoin gets a new
// authoritative snapshot instead.
func (g *Game) onDisconnected() {
	if g.net != nil {
		_ = g.net.Close()
		g.net = nil
	}
	g.connSt = stateFailed
	g.connRetryAt = time.Now().Add(2 * time.Second)

	g.sel.Reset()
	g.chat.Blur()
	g.notices.SetSticky("Disconnected, reconnecting...")
}
