package engine

import "github.com/lixenwraith/vi-pong/core"

//go:generate go tool mockgen -source=listener.go -destination=mock_listener_test.go -package=engine

// Listener receives frame events from the match
// Calls are made synchronously on the frame loop goroutine and must not block
type Listener interface {
	OnPaddleHit(side core.Side, rally int)
	OnWallBounce()
	OnScore(scorer core.Side, playerScore, aiScore int)
	OnPhaseChange(from, to Phase)
}

// NopListener ignores every event
type NopListener struct{}

func (NopListener) OnPaddleHit(core.Side, int)  {}
func (NopListener) OnWallBounce()               {}
func (NopListener) OnScore(core.Side, int, int) {}
func (NopListener) OnPhaseChange(Phase, Phase)  {}

// Listeners fans every event out to each member in order
type Listeners []Listener

func (ls Listeners) OnPaddleHit(side core.Side, rally int) {
	for _, l := range ls {
		l.OnPaddleHit(side, rally)
	}
}

func (ls Listeners) OnWallBounce() {
	for _, l := range ls {
		l.OnWallBounce()
	}
}

func (ls Listeners) OnScore(scorer core.Side, playerScore, aiScore int) {
	for _, l := range ls {
		l.OnScore(scorer, playerScore, aiScore)
	}
}

func (ls Listeners) OnPhaseChange(from, to Phase) {
	for _, l := range ls {
		l.OnPhaseChange(from, to)
	}
}
