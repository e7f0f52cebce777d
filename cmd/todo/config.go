package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/agalitsyn/flagutils"

	"github.com/agalitsyn/todo-tui/version"
)

const EnvPrefix = "TODO"

type Config struct {
	Debug   bool
	LogFile string
}

func (c Config) String() string {
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(0)
	}
	return string(b)
}

func ParseFlags() Config {
	var cfg Config

	printVersion := flag.Bool("version", false, "Show version.")
	debug := flag.Bool("debug", false, "Debug mode.")
	logFile := flag.String("log-file", "", "Write logs to file instead of stderr.")

	flagutils.Prefix = EnvPrefix
	flagutils.Parse()
	flag.Parse()

	cfg.Debug = *debug
	cfg.LogFile = *logFile

	if *printVersion {
		fmt.Fprintln(os.Stdout, version.String())
		os.Exit(0)
	}

	return cfg
}
