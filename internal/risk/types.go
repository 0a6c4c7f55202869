// Package risk defines the capability interfaces the search core queries to
// interact with a game of Risk (or, for the generic GameState surface, any
// other turn-based game): legal actions, state transitions, whose turn it is,
// and the terminal utility/heuristic signal. The core never depends on a
// concrete rules engine; internal/risk/ref ships one reference implementation
// used to exercise and test it.
package risk

// PlayerID identifies a seat at the table. Real players are numbered from 0.
type PlayerID int

// ChanceActor is the sentinel CurrentPlayer value meaning the state is
// awaiting an automatic resolution (dice combat, card-bonus computation)
// rather than a real player's choice.
const ChanceActor PlayerID = -1

// Unowned marks a territory with no owner (used only before the opening
// claim phase of a match; mid-game boards always have every territory
// owned).
const Unowned PlayerID = -2

// TerritoryID identifies one territory on the board.
type TerritoryID uint16

// ContinentID identifies one continent grouping of territories.
type ContinentID uint8
