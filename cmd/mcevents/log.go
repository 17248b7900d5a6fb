package main

import (
	"os"

	"github.com/bedrock-tool/mcevents/utils"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

func setupLogging(isDebug bool) {
	logrus.SetLevel(logrus.InfoLevel)
	if isDebug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	logFile, err := os.Create(utils.PathData("mcevents.log"))
	if err != nil {
		logrus.Warnf("No log file: %s", err)
		return
	}
	utils.G_exit = append(utils.G_exit, func() { logFile.Close() })
	logrus.AddHook(lfshook.NewHook(logFile, &logrus.TextFormatter{
		DisableColors: true,
	}))
}
