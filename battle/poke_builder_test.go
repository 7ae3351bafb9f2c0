package battle

import (
	"errors"
	"testing"
)

func TestBuildEnforcesLearnset(t *testing.T) {
	base := *bulbasaurBase
	base.Learnset = []string{"tackle", "growl"}

	if _, err := NewPokeBuilder(&base).SetMoves(moveTackle, moveGrowl).Build(); err != nil {
		t.Fatalf("expected learnset moves to build, got %v", err)
	}

	_, err := NewPokeBuilder(&base).SetMoves(moveFlamethrower).Build()
	if !errors.Is(err, ErrUnlearnableMove) {
		t.Fatalf("expected ErrUnlearnableMove, got %v", err)
	}
}

func TestBuildAllowsAnyMoveWithoutLearnset(t *testing.T) {
	if _, err := NewPokeBuilder(bulbasaurBase).SetMoves(moveFlamethrower).Build(); err != nil {
		t.Fatalf("expected a species without a learnset to be unrestricted, got %v", err)
	}
}
