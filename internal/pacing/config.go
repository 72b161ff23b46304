package pacing

import (
	"sync/atomic"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const (
	// DefaultSpeed is the speed applied when a config message carries
	// speed 0.
	DefaultSpeed = 200

	// DefaultSpeedDivisor normalizes the raw speed scalar before it is
	// fed to the model on the scroll path.
	DefaultSpeedDivisor = 50
)

// Config holds the externally replaceable pacing state: the serialized
// model and the interaction speed scalar.
//
// Update may be called from any goroutine; readers take atomic
// snapshots. The model string is value-copied on read, so an in-flight
// prediction can observe at most one stale model after a replacement.
type Config struct {
	model     atomic.Pointer[string]
	speed     atomic.Int64
	routingID atomic.Int64
	divisor   atomic.Int64
}

// NewConfig creates a Config with no model and default speed.
func NewConfig() *Config {
	c := &Config{}
	c.speed.Store(DefaultSpeed)
	c.divisor.Store(DefaultSpeedDivisor)
	return c
}

// Update applies an external pacing config message. An empty model
// string leaves the previous model unchanged; speed 0 is normalized to
// DefaultSpeed.
func (c *Config) Update(model string, routingID, speed int) {
	if model != "" {
		c.model.Store(&model)
	}
	if speed == 0 {
		speed = DefaultSpeed
	}
	c.speed.Store(int64(speed))
	c.routingID.Store(int64(routingID))
}

// Model returns a snapshot of the current model string.
func (c *Config) Model() string {
	p := c.model.Load()
	if p == nil {
		return ""
	}
	return *p
}

// Speed returns the current raw speed scalar.
func (c *Config) Speed() int {
	return int(c.speed.Load())
}

// RoutingID returns the routing id from the last config message.
func (c *Config) RoutingID() int {
	return int(c.routingID.Load())
}

// SetSpeedDivisor overrides the speed normalization divisor.
func (c *Config) SetSpeedDivisor(d int) {
	if d > 0 {
		c.divisor.Store(int64(d))
	}
}

// NormalizedSpeed returns the speed scaled by the divisor, as fed to
// the model.
func (c *Config) NormalizedSpeed() float64 {
	return float64(c.speed.Load()) / float64(c.divisor.Load())
}

// ParseUpdate decodes an external pacing config message. The message
// is a JSON object {"model": string, "routing_id": int, "speed": int};
// absent fields decode to their zero values and are normalized by
// Update.
func ParseUpdate(msg string) (model string, routingID, speed int, err error) {
	if !gjson.Valid(msg) {
		return "", 0, 0, ErrInvalidConfigMessage
	}
	model = gjson.Get(msg, "model").String()
	routingID = int(gjson.Get(msg, "routing_id").Int())
	speed = int(gjson.Get(msg, "speed").Int())
	return model, routingID, speed, nil
}

// ApplyUpdate decodes a pacing config message and applies it.
func (c *Config) ApplyUpdate(msg string) error {
	model, routingID, speed, err := ParseUpdate(msg)
	if err != nil {
		return err
	}
	c.Update(model, routingID, speed)
	return nil
}

// EncodeUpdate builds a pacing config message.
func EncodeUpdate(model string, routingID, speed int) (string, error) {
	msg, err := sjson.Set("", "model", model)
	if err != nil {
		return "", err
	}
	msg, err = sjson.Set(msg, "routing_id", routingID)
	if err != nil {
		return "", err
	}
	return sjson.Set(msg, "speed", speed)
}
