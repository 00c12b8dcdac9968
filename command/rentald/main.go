// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/mikpaszkowski/rentald/account"
	"github.com/mikpaszkowski/rentald/background"
	"github.com/mikpaszkowski/rentald/completer"
	"github.com/mikpaszkowski/rentald/grant"
	"github.com/mikpaszkowski/rentald/hooks"
	"github.com/mikpaszkowski/rentald/journal"
	"github.com/mikpaszkowski/rentald/ledger"
	"github.com/mikpaszkowski/rentald/metrics"
	"github.com/mikpaszkowski/rentald/publish"
	"github.com/mikpaszkowski/rentald/rental"
	"github.com/mikpaszkowski/rentald/rpc"
	"github.com/mikpaszkowski/rentald/rpc/server"
	"github.com/mikpaszkowski/rentald/submission"
	"github.com/mikpaszkowski/rentald/uritoken"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

const (
	dialTimeout  = 30 * time.Second
	checkTimeout = 10 * time.Second
)

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
		{Long: "memory-stats", HasArg: getoptions.NO_ARGUMENT, Short: 'm'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration and
	// process data needed for initial setup
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if 1 != len(options["config-file"]) {
		exitwithstatus.Message("%s: only one config-file option is required, %d were detected", program, len(options["config-file"]))
	}

	variables, err := parseDefines(options["define"])
	if nil != err {
		exitwithstatus.Message("%s: %s", program, err)
	}

	// read options and parse the configuration file
	configurationFile := options["config-file"][0]
	theConfiguration, err := getConfiguration(configurationFile, variables)
	if nil != err {
		exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
	}

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// start logging
	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	// optional PID file
	// use if not running under a supervisor program like daemon(8)
	if "" != theConfiguration.PidFile {
		lockFile, err := os.OpenFile(theConfiguration.PidFile, os.O_WRONLY|os.O_EXCL|os.O_CREATE, os.ModeExclusive|0600)
		if nil != err {
			if os.IsExist(err) {
				exitwithstatus.Message("%s: another instance is already running", program)
			}
			exitwithstatus.Message("%s: PID file: %q creation failed, error: %s", program, theConfiguration.PidFile, err)
		}
		fmt.Fprintf(lockFile, "%d\n", os.Getpid())
		lockFile.Close()
		defer os.Remove(theConfiguration.PidFile)
	}

	code, err := loadHookCode(&theConfiguration.Hook)
	if nil != err {
		log.Criticalf("hook code error: %s", err)
		exitwithstatus.Message("hook code error: %s", err)
	}
	log.Infof("hook hash: %s", code.HookHash)

	// ledger connection
	log.Infof("ledger: %s", theConfiguration.Ledger.URL)
	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	client, err := ledger.Dial(ctx, &theConfiguration.Ledger, logger.New("ledger"))
	cancel()
	if nil != err {
		log.Criticalf("ledger dial error: %s", err)
		exitwithstatus.Message("ledger dial error: %s", err)
	}
	defer client.Close()

	queries := ledger.NewReader(client)
	checkNetwork(log, queries, theConfiguration.Ledger.NetworkID)

	definitions := ledger.NewNodeDefinitions(client)
	checkDefinitions(log, definitions)

	// submission observers
	records, err := journal.NewFromConfiguration(&theConfiguration.Journal)
	if nil != err {
		log.Criticalf("journal initialise error: %s", err)
		exitwithstatus.Message("journal initialise error: %s", err)
	}
	counters := metrics.New()

	err = publish.Initialise(&theConfiguration.Publishing)
	if nil != err {
		log.Criticalf("publish initialise error: %s", err)
		exitwithstatus.Message("publish initialise error: %s", err)
	}
	defer publish.Finalise()

	fill := completer.New(logger.New("completer"), queries, account.KeyDeriver{}, theConfiguration.Fees)
	coordinator := submission.New(
		logger.New("submission"),
		fill,
		ledger.NewLocalSigner(definitions),
		client,
		records,
		counters,
		publish.Observer(),
	)

	// domain services
	selector := hooks.Selector{HookHash: code.HookHash}
	resolver := hooks.NewResolver(logger.New("resolver"), queries, selector)
	factory := hooks.NewFactory(code)
	hookService := hooks.NewService(logger.New("hooks"), queries, resolver, factory, selector, coordinator)
	granter := grant.New(logger.New("grant"), resolver, factory, coordinator)
	rentals := rental.New(logger.New("rental"), resolver, granter, coordinator)
	tokens := uritoken.New(logger.New("uritoken"), queries, coordinator)

	processes := background.Start(background.Processes{client}, nil)
	defer processes.Stop()

	services := &server.Services{
		Queries:     queries,
		Hooks:       hookService,
		Granter:     granter,
		Rentals:     rentals,
		Tokens:      tokens,
		Journal:     records,
		Resubmitter: coordinator,
		HookHash:    code.HookHash,
		Timeout:     server.DefaultTimeout,
	}

	err = rpc.Initialise(&theConfiguration.ClientRPC, &theConfiguration.HttpsRPC, version, services, counters.Handler())
	if nil != err {
		log.Criticalf("rpc initialise error: %s", err)
		exitwithstatus.Message("rpc initialise error: %s", err)
	}
	defer rpc.Finalise()

	if len(options["memory-stats"]) > 0 {
		go memstats()
	}

	// wait for CTRL-C SIGINT or SIGTERM
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	sig := <-ch
	log.Infof("received signal: %v", sig)
	if len(options["quiet"]) == 0 {
		fmt.Printf("\nreceived signal: %v\n", sig)
		fmt.Printf("\nshutting down…\n")
	}

	log.Info("shutting down…")
}

// warn if the connected node is not on the configured network
func checkNetwork(log *logger.L, queries ledger.Queries, networkID uint32) {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	reply, err := queries.ServerInfo(ctx)
	if nil != err {
		log.Warnf("server_info error: %s", err)
		return
	}
	log.Infof("ledger build: %s  state: %s  validated: %d",
		reply.Info.BuildVersion, reply.Info.ServerState, reply.Info.ValidatedLedger.Sequence)

	if reply.Info.NetworkID != networkID {
		log.Warnf("network id mismatch: configured: %d  node: %d", networkID, reply.Info.NetworkID)
	}
}

// load the node's field numbering so the first signature does not wait
//
// on failure it is loaded again when first needed
func checkDefinitions(log *logger.L, source ledger.DefinitionSource) {
	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	d, err := source.Definitions(ctx)
	if nil != err {
		log.Warnf("server_definitions error: %s", err)
		return
	}
	log.Infof("ledger definitions hash: %s", d.Hash)
}

// convert repeated KEY=VALUE options to configuration variables
func parseDefines(defines []string) (map[string]string, error) {
	variables := make(map[string]string, len(defines))
	for _, d := range defines {
		kv := strings.SplitN(d, "=", 2)
		if 2 != len(kv) || "" == strings.TrimSpace(kv[0]) {
			return nil, fmt.Errorf("invalid define: %q  expected KEY=VALUE", d)
		}
		variables[strings.TrimSpace(kv[0])] = kv[1]
	}
	return variables, nil
}
