package experiments

import (
	"fmt"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"
	"othello/searcher"
	"othello/searcher/agent"

	"github.com/rs/zerolog/log"
)

var difficultyConfigs = []metrics.AgentConfig{
	{ID: 1, Difficulty: searcher.Easy.String(), Seed: 1},
	{ID: 2, Difficulty: searcher.Medium.String(), Seed: 2},
	{ID: 3, Difficulty: searcher.Hard.String(), Seed: 3},
}

// Tally counts the results of one match-up from the first agent's point of view.
type Tally struct {
	Agent1 int
	Agent2 int
	Wins   int
	Losses int
	Ties   int
}

// RunDifficultyExperiment pairs every difficulty against every other one, each side
// taking black in turn, plays numGames games per match-up on a size x size board and
// stores the records under root.
func RunDifficultyExperiment(root string, numGames, size int) ([]Tally, error) {
	matchUps := [][]metrics.AgentConfig{}
	for _, config1 := range difficultyConfigs {
		for _, config2 := range difficultyConfigs {
			if config1.ID != config2.ID {
				matchUps = append(matchUps, []metrics.AgentConfig{config1, config2})
			}
		}
	}

	return runExperiment(root, "difficulty", difficultyConfigs, matchUps, numGames, size)
}

func runExperiment(root, name string, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames, size int) ([]Tally, error) {
	// Run a number of games for each matchup
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	tallies := make([]Tally, 0, len(matchUps))

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchup := range matchUps {
		config1 := matchup[0]
		config2 := matchup[1]
		tally := Tally{Agent1: config1.ID, Agent2: config2.ID}

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			winner, gameMetric, moveMetrics, err := runGame(config1, config2, uint64(i), size)
			if err != nil {
				return nil, err
			}
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case game.Black:
				tally.Wins++
			case game.White:
				tally.Losses++
			default:
				tally.Ties++
			}
		}
		tallies = append(tallies, tally)
		log.Info().Msgf("completed matchup %d of %d: %d wins, %d losses, %d ties", mi+1, len(matchUps), tally.Wins, tally.Losses, tally.Ties)
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return nil, fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return tallies, nil
}

// runGame plays one game, config1 as black and config2 as white.
func runGame(config1, config2 metrics.AgentConfig, round uint64, size int) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	agent1, err := createAgent(config1, round)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}
	agent2, err := createAgent(config2, round)
	if err != nil {
		return 0, metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocalEngine([]agent.Agent{agent1, agent2}, size)
	winner, gameMetric, moveMetrics := e.Run()
	return winner, gameMetric, moveMetrics, nil
}

func createAgent(config metrics.AgentConfig, round uint64) (agent.Agent, error) {
	difficulty, err := searcher.ParseDifficulty(config.Difficulty)
	if err != nil {
		return nil, err
	}

	s := searcher.NewSearcher(searcher.WithSeed(config.Seed+round), searcher.WithMetrics())
	return agent.NewNamedAgent(fmt.Sprintf("agent%d-%s", config.ID, config.Difficulty), s, difficulty), nil
}
