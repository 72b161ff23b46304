package app

import (
	"github.com/dshills/gesturekit/internal/curve"
	"github.com/dshills/gesturekit/internal/dispatch"
	"github.com/dshills/gesturekit/internal/gesture"
	"github.com/dshills/gesturekit/internal/log"
)

// client is the demo's dispatch.Client. It builds momentum curves and
// tracks fling/overscroll state for the status line.
type client struct {
	logger *log.Logger

	flinging       bool
	transfers      int
	inputFrames    uint64
	lastOverscroll gesture.Vec
}

func newClient(logger *log.Logger) *client {
	return &client{logger: logger.WithComponent("client")}
}

func (c *client) CreateFlingCurve(device gesture.Device, velocity, cumulative gesture.Vec) dispatch.Curve {
	return curve.NewFling(device, velocity, cumulative)
}

func (c *client) DidOverscroll(accumulated, unused gesture.Vec, flingVelocity gesture.Vec, point gesture.Vec) {
	c.lastOverscroll = accumulated
	c.logger.Debug("overscroll accumulated=%v unused=%v", accumulated, unused)
}

func (c *client) DidStartFlinging() {
	c.flinging = true
}

func (c *client) DidStopFlinging() {
	c.flinging = false
}

func (c *client) DidAnimateForInput() {
	c.inputFrames++
}

func (c *client) TransferActiveWheelFlingAnimation(params dispatch.FlingParameters) {
	c.transfers++
	c.logger.Info("wheel fling transferred velocity=%v covered=%v", params.Delta, params.CumulativeScroll)
}

func (c *client) DispatchNonBlockingEventToMainThread(ev gesture.Event) {
	c.logger.Debug("non-blocking %s forwarded", ev.Kind())
}
