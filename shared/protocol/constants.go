package protocol

const (
	ScreenW = 900
	ScreenH = 700

	// World is the server-defined match area; everything below it is HUD.
	WorldW = 900
	WorldH = 600

	// Net/update cadence
	TickRate           = 20
	SnapshotIntervalMs = 500

	SellRefundRate = 0.6

	MaxChatLen = 200
)

// Upgrade axes. Every tower has an independent level per axis; a nil cost
// for an axis means it is maxed.
const (
	AxisDamage = "damage"
	AxisRange  = "range"
	AxisSpeed  = "speed"
)
