package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/gamemaster"
	"othello/meta"
	"othello/searcher"
	"othello/searcher/agent"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	mode := flag.String("mode", "play", "play, selfplay or experiment")
	size := flag.Int("size", meta.BOARD_SIZE, "Board side, even")
	level := flag.String("difficulty", "hard", "Computer difficulty: easy, medium or hard")
	opponent := flag.String("opponent", "medium", "Black's difficulty in selfplay mode")
	name := flag.String("name", "Player", "Player's name")
	hints := flag.Bool("hints", true, "Mark the player's legal moves")
	scores := flag.String("scores", meta.SCORES_FILE, "High score file")
	games := flag.Int("games", 10, "Games per match-up in experiment mode")
	out := flag.String("out", "experiments", "Output directory in experiment mode")
	debug := flag.Bool("debug", false, "Log search details")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	difficulty, err := searcher.ParseDifficulty(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -difficulty")
	}

	switch *mode {
	case "play":
		computer := agent.NewEvaluationAgent(searcher.NewSearcher(), difficulty)
		session := gamemaster.NewSession(*name, computer, *size,
			gamemaster.WithHints(*hints),
			gamemaster.WithScoreBook(gamemaster.NewScoreBook(*scores)))
		play(session)
	case "selfplay":
		blackLevel, err := searcher.ParseDifficulty(*opponent)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid -opponent")
		}
		agents := []agent.Agent{
			agent.NewNamedAgent("Black "+blackLevel.String(), searcher.NewSearcher(), blackLevel),
			agent.NewNamedAgent("White "+difficulty.String(), searcher.NewSearcher(), difficulty),
		}
		e := engine.NewLocalEngine(agents, *size)
		winner, gameMetric, _ := e.Run()
		fmt.Print(e.Board)
		fmt.Printf("%s: %d - %d\n", engine.ResultName(winner), gameMetric.Black, gameMetric.White)
	case "experiment":
		tallies, err := experiments.RunDifficultyExperiment(*out, *games, *size)
		if err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		for _, t := range tallies {
			fmt.Printf("agent%d vs agent%d: %d-%d-%d\n", t.Agent1, t.Agent2, t.Wins, t.Losses, t.Ties)
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

// play reads "x y" moves from stdin until the game ends.
func play(session *gamemaster.Session) {
	scanner := bufio.NewScanner(os.Stdin)
	for !session.Over() {
		b := session.Board()
		fmt.Println(session.Score())
		fmt.Print(b.StringWithHints(session.Hints()))
		fmt.Print("your move (x y): ")

		if !scanner.Scan() {
			return
		}
		cell, err := parseCell(scanner.Text())
		if err != nil {
			fmt.Println(err)
			continue
		}
		if err := session.Play(cell); err != nil {
			fmt.Println(err)
		}
	}

	fmt.Print(session.Board())
	fmt.Println(session.Banner())
}

func parseCell(input string) (game.Cell, error) {
	fields := strings.Fields(strings.ReplaceAll(input, ",", " "))
	if len(fields) != 2 {
		return game.Cell{}, fmt.Errorf("expected two numbers, got %q", input)
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Cell{}, fmt.Errorf("bad column: %w", err)
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Cell{}, fmt.Errorf("bad row: %w", err)
	}
	return game.Cell{X: x, Y: y}, nil
}
