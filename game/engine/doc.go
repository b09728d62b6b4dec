// Package engine provides the rules of the tower building board game.
//
// The engine package implements the game mechanics including:
//   - The 5x5 grid where every cell holds an ordered stack of pieces
//   - Turn limits, card effects and the Athena restriction
//   - Move and build legality checks and the win conditions
//   - Setup parsing and ruleset validation
//
// Core Types:
//
// GameState holds the whole game: board, both players, the current Turn and
// the remaining cards. Every rules operation is a method on GameState, so two
// games never share anything. The Engine interface wraps a GameState for
// callers that prefer an object, implemented by GameEngine.
//
// Usage:
//
//	gameEngine, err := engine.NewEngineFromArgs(nil, []string{"a;0;0", "b;0;1", "c;4;4", "d;4;3"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if _, err := gameEngine.Move("a", engine.Position{Row: 1, Col: 1}); err != nil {
//		fmt.Println("Error,", err)
//	}
//
// Game Rules:
//
// Each turn the active player may draw one power card, then moves one pawn and
// builds next to it. A pawn climbs at most one level per move and a cap may
// only top a completed tower. Reaching level 4 wins; so does leaving the
// opponent with no free neighbouring cell.
package engine
