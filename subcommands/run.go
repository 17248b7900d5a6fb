package subcommands

import (
	"context"
	"flag"

	"github.com/bedrock-tool/mcevents/handlers/bedrock"
	"github.com/bedrock-tool/mcevents/locale"
	"github.com/bedrock-tool/mcevents/utils"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type RunCMD struct {
	Script     string
	Address    string
	Listen     string
	Offline    bool
	PlayerName string
	Push       string
}

func (*RunCMD) Name() string     { return "run" }
func (*RunCMD) Synopsis() string { return locale.Loc("run_synopsis", nil) }

func (c *RunCMD) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.Script, "script", "", locale.Loc("script_help", nil))
	f.StringVar(&c.Address, "address", "", locale.Loc("address_help", nil))
	f.StringVar(&c.Listen, "listen", "", locale.Loc("listen_help", nil))
	f.BoolVar(&c.Offline, "offline", false, locale.Loc("offline_help", nil))
	f.StringVar(&c.PlayerName, "name", "mcevents", locale.Loc("name_help", nil))
	f.StringVar(&c.Push, "push", "", locale.Loc("push_help", nil))
}

func (c *RunCMD) Usage() string {
	return c.Name() + ": " + c.Synopsis() + "\n"
}

func (c *RunCMD) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s, err := newSession(c.Script, c.Push)
	if err != nil {
		logrus.Error(err)
		return 1
	}

	src := bedrock.NewSource(s.registry, nil)
	if c.Listen != "" {
		err = bedrock.Proxy(ctx, bedrock.ProxyConfig{
			Address: c.Address,
			Listen:  c.Listen,
			Offline: c.Offline,
		}, src)
	} else {
		err = bedrock.Connect(ctx, bedrock.Config{
			Address: c.Address,
			Offline: c.Offline,
			Name:    c.PlayerName,
		}, src)
	}
	logrus.Info(locale.Loc("session_done", locale.Strmap{"Fired": s.registry.Stats().Fired}))
	if err != nil {
		logrus.Error(err)
		return 1
	}
	return 0
}

func init() {
	utils.RegisterCommand(&RunCMD{})
}
