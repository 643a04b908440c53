// meta/meta.go
package meta

// DEFAULT_BOARD_SIZE is the number of squares on a default board.
const DEFAULT_BOARD_SIZE = 30

// PENALTIES_ACTIVE is whether penalty squares are playable by default.
const PENALTIES_ACTIVE = true

// MAX_TURNS caps the number of turns an engine plays before giving up.
const MAX_TURNS = 1000

// GAMES_PER_MATCHUP is the default number of games per tournament matchup.
const GAMES_PER_MATCHUP = 20

// DEBUG_NODE_INTERVAL is how many search nodes pass between debug log lines.
const DEBUG_NODE_INTERVAL = 10000
