// meta/meta.go
package meta

// BOARD_SIZE is the side of a standard Othello board.
const BOARD_SIZE = 8

// MAX_TURN_PASSES ends the game once both sides pass in a row.
const MAX_TURN_PASSES = 2

// MAX_TURNS bounds a self-play game, passes included.
const MAX_TURNS = 600

// SCORES_FILE is where human wins are recorded.
const SCORES_FILE = "scores.txt"

// COMPUTER_NAME is the display name of the computer player.
const COMPUTER_NAME = "Computer"
