// Package session keeps running games in memory.
//
// Manager is a thread-safe map from game ID to service.Session. Each session
// owns its own engine, so games never share state. IDs default to the UUID
// the engine generated for the game and are matched case-insensitively.
//
// Usage:
//
//	manager := session.NewManager()
//
//	sess, err := manager.Create("", engine.DefaultRuleset(), pawns)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
// Nothing is written to disk; a game lives as long as the process.
package session
