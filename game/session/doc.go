// Package session provides session management for the snakes and ladders
// simulator.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - Scenario setup of new sessions
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// Each service.Session owns its own game engine, built with the manager's
// rules and set up by running a scenario script.
//
// Session Identifiers:
//
// Generated IDs are the first eight characters of a random UUID. Lookups
// are case-insensitive.
//
// Usage:
//
//	manager := session.NewManager(session.WithLogger(logger))
//
//	sess, err := manager.Create("", scenario)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	sess, err = manager.Get(sess.ID)
//
//	go manager.RunCleanup(ctx, time.Hour, 24*time.Hour)
//
// Sessions live in memory only and are gone when the process exits.
package session
