// Package game implements the blackjack round engine and the session
// state machine that drives it.
//
// The engine is deliberately small: a Round owns a freshly shuffled deck
// and the two hands, scoring is a pure function over a hand, and the
// dealer follows the fixed draw-to-17 house rule. Everything the player
// can do arrives as a tagged Action routed through Session.Apply, which
// validates it against the current Phase, mutates state synchronously
// and persists a snapshot before returning.
package game
