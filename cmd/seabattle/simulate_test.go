package main

import (
	"testing"

	"github.com/vovakirdan/tui-seabattle/internal/battle"
)

func TestSimResultAdd(t *testing.T) {
	var r simResult
	r.add(battle.SideHuman, 30)
	r.add(battle.SideOpponent, 12)
	r.add(battle.SideHuman, 45)

	if r.games != 3 || r.firstWins != 2 {
		t.Errorf("games/wins = %d/%d, expected 3/2", r.games, r.firstWins)
	}
	if r.minTurns != 12 || r.maxTurns != 45 || r.totalTurns != 87 {
		t.Errorf("turns = min %d max %d total %d", r.minTurns, r.maxTurns, r.totalTurns)
	}
}
