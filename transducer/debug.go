package transducer

import (
	"github.com/davecgh/go-spew/spew"

	"github.com/katalvlaran/stlmon/signal"
)

// DebugString renders n's kind, horizon, four output signals and the
// cauUpL/cauUpR/cauLowL/cauLowR scratch signals for troubleshooting; the
// cauM/zM scratch signals and n's children are not included. Only meant for --verbose CLI output (cmd/stlmon); not on
// any evaluation hot path.
func (n *Node) DebugString() string {
	return spew.Sdump(struct {
		Kind                             Kind
		StartTime, EndTime               float64
		ZUp, ZLow, CauUp, CauLow         *signal.Signal
		CauUpL, CauUpR, CauLowL, CauLowR *signal.Signal
	}{
		Kind:      n.Kind,
		StartTime: n.StartTime,
		EndTime:   n.EndTime,
		ZUp:       n.ZUp,
		ZLow:      n.ZLow,
		CauUp:     n.CauUp,
		CauLow:    n.CauLow,
		CauUpL:    n.cauUpL,
		CauUpR:    n.cauUpR,
		CauLowL:   n.cauLowL,
		CauLowR:   n.cauLowR,
	})
}
