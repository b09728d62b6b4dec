// Package command implements the line protocol used to play a game from a
// terminal.
//
// Every input line is one command:
//
//	move <pawn>;<row>;<col>
//	build <C|D>;<row>;<col>
//	draw-card <card>
//	turn
//	print
//	cellprint <row>;<col>
//	bag
//	surrender
//	quit
//
// A Console parses each line, forwards it to the game service and prints one
// reply: OK for an accepted move, build or card, the next player for turn,
// "Error, <reason>" for anything rejected and "<player> wins" when the game
// ends. quit stops without output.
package command
