package stream

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/kaczka/internal/config"
	"github.com/Faultbox/kaczka/internal/sim"
)

// Publish steps s at a fixed time step and broadcasts a snapshot every
// cfg.Interval until ctx is done. It returns ctx.Err().
func Publish(ctx context.Context, s *sim.Simulation, hub *Hub, cfg config.StreamConfig, step time.Duration) error {
	stepTicker := time.NewTicker(step)
	defer stepTicker.Stop()
	sendTicker := time.NewTicker(cfg.Interval)
	defer sendTicker.Stop()

	var frame sim.Frame
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stepTicker.C:
			frame = s.Tick(step.Seconds())
		case <-sendTicker.C:
			snap := NewSnapshot(frame, s.TotalDrops(), s.Surface().Field, cfg.Downsample)
			if _, err := hub.Broadcast(snap); err != nil {
				hub.log.Warn("broadcast failed", zap.Error(err))
				return err
			}
		}
	}
}
