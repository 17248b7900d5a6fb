package subcommands

import (
	"flag"
	"testing"
)

func TestRunFlags(t *testing.T) {
	c := &RunCMD{}
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if c.PlayerName != "mcevents" {
		t.Fatalf("unexpected default name %s", c.PlayerName)
	}
	err := f.Parse([]string{"-script", "s.js", "-address", "play.example.net:19132", "-listen", ":19133", "-name", "Alex", "-offline"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "run" || c.PlayerName != "Alex" || c.Listen != ":19133" || !c.Offline || c.Address != "play.example.net:19132" {
		t.Fatalf("unexpected flags %+v", c)
	}
}
