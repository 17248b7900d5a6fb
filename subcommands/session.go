package subcommands

import (
	"github.com/bedrock-tool/mcevents/handlers/scripting"
	"github.com/bedrock-tool/mcevents/locale"
	"github.com/bedrock-tool/mcevents/registry"
	"github.com/bedrock-tool/mcevents/utils"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sirupsen/logrus"
)

// session is a registry with a script loaded into it.
type session struct {
	registry *registry.Registry
	vm       *scripting.VM
}

func newSession(script, pushURL string) (*session, error) {
	var metrics *utils.Metrics
	if pushURL != "" {
		metrics = utils.NewMetrics()
		metrics.Attach(push.New(pushURL, "mcevents"))
	}
	r := registry.New(metrics)
	vm := scripting.New(r)
	if err := vm.LoadFile(script); err != nil {
		return nil, err
	}
	logrus.Info(locale.Loc("script_loaded", locale.Strmap{"Path": script}))
	return &session{registry: r, vm: vm}, nil
}
