package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/bedrock-tool/mcevents/locale"
	"github.com/bedrock-tool/mcevents/utils"

	_ "github.com/bedrock-tool/mcevents/subcommands"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

var version string

func exit() {
	logrus.Info(locale.Loc("exiting", nil))
	for i := len(utils.G_exit) - 1; i >= 0; i-- { // go through cleanup functions reversed
		utils.G_exit[i]()
	}
}

func banner() {
	color.New(color.FgHiGreen, color.Bold).Print("mcevents")
	if version != "" {
		fmt.Printf(" %s", version)
	}
	fmt.Println()
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var lang string
	flag.BoolVar(&utils.G_debug, "debug", false, "debug mode")
	flag.StringVar(&lang, "lang", "", "language of messages, en or ja")
	flag.StringVar(&utils.DataFolder, "data", "", "folder for the token cache and log")
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.ImportantFlag("debug")
	subcommands.ImportantFlag("lang")

	banner()
	if len(os.Args) < 2 {
		fmt.Println("Available commands:")
		names := make([]string, 0, len(utils.ValidCMDs))
		for name := range utils.ValidCMDs {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("\t%s\t%s\n", name, utils.ValidCMDs[name].Synopsis())
		}
		fmt.Printf("Use '%s <command>' to run a command\n", os.Args[0])
		return
	}

	flag.Parse()
	if utils.DataFolder != "" {
		if err := os.MkdirAll(utils.DataFolder, 0o777); err != nil {
			logrus.Fatal(err)
		}
	}
	if err := locale.Use(lang); err != nil {
		logrus.Warn(err)
	}
	setupLogging(utils.G_debug)

	// exit cleanup
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
	}()

	ret := subcommands.Execute(ctx)
	exit()
	os.Exit(int(ret))
}
