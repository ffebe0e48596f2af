// meta/meta.go
package meta

// DefaultDepth defines the number of plies searched by minimax bots.
const DefaultDepth = 3

// ShallowDepth defines the depth of the weaker minimax bot.
const ShallowDepth = 2

// MAX_TURNS bounds the number of turns of a single game, passes included.
const MAX_TURNS = 200

// GAMES defines the number of games played per matchup.
const GAMES = 1

// DRAW is the winner name reported when neither bot wins.
const DRAW = "draw"
