// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/kelseyhightower/envconfig"

	"github.com/aclements/logplot/ingest"
)

// config holds the defaults of logplot's flags. Each field can be set
// by a LOGPLOT_ environment variable.
type config struct {
	Kind      string `envconfig:"KIND" default:"hist"`
	Bins      int    `envconfig:"BINS" default:"50"`
	Width     int    `envconfig:"WIDTH" default:"800"`
	Height    int    `envconfig:"HEIGHT" default:"500"`
	ChunkSize int    `envconfig:"CHUNK_SIZE" default:"6144"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"warn"`
	LogDev   bool   `envconfig:"LOG_DEV" default:"false"`
	// LogFile, if set, receives the log instead of stderr.
	LogFile string `envconfig:"LOG_FILE"`

	// Inputs is a shell-quoted list of inputs used when none are
	// given on the command line.
	Inputs string `envconfig:"INPUTS"`
}

func loadConfig() (*config, error) {
	var cfg config
	if err := envconfig.Process("logplot", &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return &cfg, nil
}

// splitInputs splits a shell-quoted input list.
func splitInputs(s string) ([]string, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("bad LOGPLOT_INPUTS: %w", err)
	}
	return words, nil
}

// parseInput splits an input argument of the form path[:g1,g2,...]
// into a path and group ids. A suffix that is not a list of integers
// is part of the path.
func parseInput(arg string) (path string, groups []int) {
	i := strings.LastIndexByte(arg, ':')
	if i < 0 {
		return arg, nil
	}
	for _, f := range strings.Split(arg[i+1:], ",") {
		id, err := strconv.Atoi(f)
		if err != nil {
			return arg, nil
		}
		groups = append(groups, id)
	}
	return arg[:i], groups
}

// openSources opens every input. On failure it closes the files it
// already opened.
func openSources(args []string) ([]ingest.Source, error) {
	var sources []ingest.Source
	for _, arg := range args {
		path, groups := parseInput(arg)
		f, err := ingest.Open(path)
		if err != nil {
			closeSources(sources)
			return nil, err
		}
		sources = append(sources, ingest.Source{File: f, Groups: groups})
	}
	return sources, nil
}

func closeSources(sources []ingest.Source) {
	for _, s := range sources {
		s.File.Close()
	}
}
