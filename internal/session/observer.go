package session

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
)

// logObserver writes match events to a structured logger.
type logObserver struct {
	logger *log.Logger
}

func newLogObserver(logger *log.Logger) *logObserver {
	return &logObserver{logger: logger}
}

func (o *logObserver) OnEvent(e battle.Event) {
	switch ev := e.(type) {
	case battle.MatchStartedEvent:
		o.logger.Info("match started", "first", ev.First)
	case battle.TargetRejectedEvent:
		o.logger.Debug("target rejected", "side", ev.Side, "target", ev.Target, "error", ev.Err)
	case battle.ShotFiredEvent:
		o.logger.Debug("shot", "turn", ev.Turn, "side", ev.Side, "target", ev.Target, "result", ev.Result)
	case battle.TurnPassedEvent:
		o.logger.Debug("turn passed", "to", ev.To)
	case battle.MatchOverEvent:
		o.logger.Info("match over", "winner", ev.Winner, "turns", ev.Turns)
	}
}

// fanOut delivers each event to every observer in order.
type fanOut []battle.Observer

func (f fanOut) OnEvent(e battle.Event) {
	for _, o := range f {
		if o != nil {
			o.OnEvent(e)
		}
	}
}
