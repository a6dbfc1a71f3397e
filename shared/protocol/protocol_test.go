package protocol

import (
	"encoding/json"
	"testing"
)

func TestEnvelopeRoundTrip(t *testing.T) {
	data, _ := json.Marshal(PlaceTower{PlotID: 3, TowerType: "cannon", Nonce: "n1"})
	raw, err := json.Marshal(MsgEnvelope{Type: "placeTower", Data: data})
	if err != nil {
		t.Fatal(err)
	}

	var env MsgEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatal(err)
	}
	if env.Type != "placeTower" {
		t.Fatalf("type = %q", env.Type)
	}

	var m PlaceTower
	if err := json.Unmarshal(env.Data, &m); err != nil {
		t.Fatal(err)
	}
	if m.PlotID != 3 || m.TowerType != "cannon" || m.Nonce != "n1" {
		t.Errorf("payload = %+v", m)
	}
}

func TestAxisCostsNilMeansMaxed(t *testing.T) {
	// The server sends null for a maxed axis; the pointer must come back nil.
	var c AxisCosts
	if err := json.Unmarshal([]byte(`{"damage":120,"range":null,"speed":90}`), &c); err != nil {
		t.Fatal(err)
	}
	if c.Damage == nil || *c.Damage != 120 {
		t.Errorf("damage = %v", c.Damage)
	}
	if c.Range != nil {
		t.Errorf("range = %v, want nil for maxed", *c.Range)
	}
	if c.Speed == nil || *c.Speed != 90 {
		t.Errorf("speed = %v", c.Speed)
	}
}
