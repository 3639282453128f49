package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/SAMIC97/Christmas-Jeopardy/engine"
)

const releaseVersion = "1.0.0"

type config struct {
	bind           string
	port           int
	questionsPath  string
	teams          int
	teamNames      []string
	totalQuestions int
	startingCoins  int
	maxCoins       int
	defaultSeconds float64
	stealSeconds   float64
	verbose        bool
}

func (c *config) validate() error {
	if c.port < 1 || c.port > 65535 {
		return fmt.Errorf("invalid port (must be between 1-65535 inclusive): %d", c.port)
	}
	if c.teams < 2 || c.teams > engine.MaxTeams {
		return fmt.Errorf("teams must be between 2 and %d, got %d", engine.MaxTeams, c.teams)
	}
	if len(c.teamNames) > c.teams {
		return fmt.Errorf("%d team names given for %d teams", len(c.teamNames), c.teams)
	}
	if c.totalQuestions < 1 {
		return fmt.Errorf("total-questions must be positive, got %d", c.totalQuestions)
	}
	if c.startingCoins < 0 || c.maxCoins < c.startingCoins {
		return fmt.Errorf("coin bounds invalid: start %d, max %d", c.startingCoins, c.maxCoins)
	}
	if c.defaultSeconds <= 0 || c.stealSeconds <= 0 {
		return fmt.Errorf("clock durations must be positive")
	}
	return nil
}

// rules maps the flag values onto the engine's rule set. The per-value answer
// budgets stay at their defaults; only the fallbacks are tunable.
func (c *config) rules() engine.Rules {
	r := engine.DefaultRules()
	r.TotalQuestions = c.totalQuestions
	r.StartingCoins = c.startingCoins
	r.MaxCoins = c.maxCoins
	r.DefaultSeconds = c.defaultSeconds
	r.StealSeconds = c.stealSeconds
	return r
}

func newCmd(cfg *config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("JEOPARDY")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:           "jeopardy",
		Short:         "A turn-based Christmas trivia board for game nights, served over HTTP.",
		Args:          cobra.ExactArgs(0),
		SilenceErrors: true,
		SilenceUsage:  true,
		Version:       releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.StringVarP(&cfg.bind, "bind", "b", "0.0.0.0", "address to bind to (env: JEOPARDY_BIND)")
	fs.IntVarP(&cfg.port, "port", "p", 8080, "port to listen on (env: JEOPARDY_PORT)")
	fs.StringVarP(&cfg.questionsPath, "questions", "q", "data/questions.json", "path to the question set (env: JEOPARDY_QUESTIONS)")
	fs.IntVarP(&cfg.teams, "teams", "t", 2, "number of teams playing (env: JEOPARDY_TEAMS)")
	fs.StringSliceVar(&cfg.teamNames, "team-names", nil, "comma-separated team names; missing ones get defaults (env: JEOPARDY_TEAM_NAMES)")
	fs.IntVar(&cfg.totalQuestions, "total-questions", 30, "questions per session (env: JEOPARDY_TOTAL_QUESTIONS)")
	fs.IntVar(&cfg.startingCoins, "starting-coins", 3, "coins each team starts with (env: JEOPARDY_STARTING_COINS)")
	fs.IntVar(&cfg.maxCoins, "max-coins", 5, "coin balance cap (env: JEOPARDY_MAX_COINS)")
	fs.Float64Var(&cfg.defaultSeconds, "default-seconds", 20, "answer clock for off-grid point values (env: JEOPARDY_DEFAULT_SECONDS)")
	fs.Float64Var(&cfg.stealSeconds, "steal-seconds", 5, "answer clock for steal attempts (env: JEOPARDY_STEAL_SECONDS)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "display additional output (env: JEOPARDY_VERBOSE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("jeopardy v{{.Version}}\n")

	return cmd
}
