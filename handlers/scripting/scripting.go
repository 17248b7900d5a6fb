package scripting

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/bedrock-tool/mcevents/events"
	"github.com/bedrock-tool/mcevents/utils"
	"github.com/dop251/goja"
	"github.com/dop251/goja_nodejs/console"
	"github.com/dop251/goja_nodejs/require"
	"github.com/sirupsen/logrus"
)

var errNotFunction = errors.New("handler is not a function")

// VM runs event scripts. Scripts see a global `events` object with the host
// registrations, their `_on...` aliases, the code translators and the enums.
type VM struct {
	runtime *goja.Runtime
	lock    sync.Mutex
	log     *logrus.Entry
	aliases *events.Aliases
}

func New(host events.Host) *VM {
	v := &VM{
		runtime: goja.New(),
		log:     logrus.WithField("part", "jsvm"),
		aliases: events.NewAliases(host),
	}
	v.runtime.SetFieldNameMapper(goja.TagFieldNameMapper("json", true))

	registry := new(require.Registry)
	registry.Enable(v.runtime)
	console.Enable(v.runtime)

	obj := v.runtime.NewObject()
	for name, fn := range v.registrations() {
		obj.Set(name, fn)
		obj.Set("_"+name, fn)
	}
	for name, fn := range translators() {
		obj.Set(name, fn)
	}
	for name, members := range enums() {
		enum := v.runtime.NewObject()
		for member, value := range members {
			enum.Set(member, value)
		}
		obj.Set(name, enum)
		v.runtime.GlobalObject().Set(name, enum)
	}
	v.runtime.GlobalObject().Set("events", obj)

	return v
}

func (v *VM) Load(script string) error {
	v.lock.Lock()
	defer v.lock.Unlock()
	_, err := v.runtime.RunScript("script.js", script)
	if err != nil {
		return err
	}
	return nil
}

func (v *VM) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read script '%s': %w", path, err)
	}
	return v.Load(string(data))
}

// Global returns the exported value of a script global, nil if it is not set.
func (v *VM) Global(name string) any {
	v.lock.Lock()
	defer v.lock.Unlock()
	val := v.runtime.Get(name)
	if val == nil {
		return nil
	}
	return val.Export()
}

// export converts a JS callback into the Go func type F.
func export[F any](v *VM, cb goja.Value) (f F, err error) {
	if _, ok := goja.AssertFunction(cb); !ok {
		return f, errNotFunction
	}
	err = v.runtime.ExportTo(cb, &f)
	return f, err
}

// call runs a script callback under the VM lock. Script exceptions are logged.
func (v *VM) call(name events.Name, f func() error) {
	v.lock.Lock()
	defer v.lock.Unlock()
	if err := utils.RecoverCall(f); err != nil {
		v.log.Errorf("%s: %s", name, err)
	}
}
