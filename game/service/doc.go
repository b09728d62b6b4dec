// Package service provides the business logic layer of the game.
//
// The service package implements:
//   - Game creation from four pawn descriptors and a named ruleset
//   - Move, build, card draw, turn end and surrender processing
//   - Event extraction for accepted actions
//   - Structured logging of every action
//   - Paginated action history
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager stores the running games.
// RulesetManager loads rulesets and supplies the default one.
//
// Architecture:
//
// The service layer sits between the console front end and the game engine.
// A rule rejection is not a service error: the action returns an
// ActionResult with Success false, Message set to the rejection reason and
// Err holding the engine sentinel for errors.Is checks. Errors returned by
// the service itself mean the game or ruleset could not be found.
//
// Usage:
//
//	rulesets, _ := config.NewManager("configs")
//	gameService := service.NewGameService(session.NewManager(), rulesets, logger)
//
//	info, err := gameService.NewGame(ctx, "", []string{"a;0;0", "b;0;1", "c;4;4", "d;4;3"})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	result, err := gameService.Move(ctx, info.ID, "a", engine.Position{Row: 1, Col: 0})
package service
