package subcommands

import (
	"context"
	"flag"

	"github.com/bedrock-tool/mcevents/locale"
	"github.com/bedrock-tool/mcevents/scenario"
	"github.com/bedrock-tool/mcevents/utils"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type SimulateCMD struct {
	Script   string
	Scenario string
	Push     string
}

func (*SimulateCMD) Name() string     { return "simulate" }
func (*SimulateCMD) Synopsis() string { return locale.Loc("simulate_synopsis", nil) }

func (c *SimulateCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Script, "script", "", locale.Loc("script_help", nil))
	f.StringVar(&c.Scenario, "scenario", "", locale.Loc("scenario_help", nil))
	f.StringVar(&c.Push, "push", "", locale.Loc("push_help", nil))
}

func (c *SimulateCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *SimulateCMD) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := c.simulate(); err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

func (c *SimulateCMD) simulate() (*session, error) {
	sc, err := scenario.Open(c.Scenario)
	if err != nil {
		return nil, err
	}
	s, err := newSession(c.Script, c.Push)
	if err != nil {
		return nil, err
	}
	if err := sc.Play(s.registry); err != nil {
		return nil, err
	}
	stats := s.registry.Stats()
	logrus.Info(locale.Loc("scenario_done", locale.Strmap{
		"Count":      len(sc.Entries),
		"Dispatched": stats.Dispatched,
		"Panics":     stats.Panics,
	}))
	return s, nil
}

func init() {
	utils.RegisterCommand(&SimulateCMD{})
}
