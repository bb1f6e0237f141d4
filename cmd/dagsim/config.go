package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Qitmeer/phantom/log"
	"github.com/Qitmeer/phantom/params"
	"github.com/jessevdk/go-flags"
)

const (
	minCreators       = 1
	maxCreators       = 64
	defaultBlocks     = 100
	defaultCreators   = 5
	defaultDAGType    = "phantom"
	defaultThreshold  = 0.2
	defaultDebugLevel = "info"
	defaultLogName    = "dagsim.log"
)

type Config struct {
	Blocks     int     `short:"n" long:"blocks" description:"Number of blocks to simulate"`
	Creators   int     `short:"m" long:"creators" description:"Number of concurrent block creators {1-64}"`
	DAGType    string  `short:"G" long:"dagtype" description:"DAG type {phantom}"`
	Anticone   int     `short:"k" long:"anticone" description:"Tolerated anticone size, a negative value derives it from the active network"`
	TestNet    bool    `long:"testnet" description:"Use the test network parameters"`
	PrivNet    bool    `long:"privnet" description:"Use the private network parameters"`
	Adversary  float64 `long:"adversary" description:"Fraction of creators which extend only their own chain {0-0.9}"`
	Threshold  float64 `long:"threshold" description:"Red ratio above which the attack detector fires"`
	Seed       int64   `long:"seed" description:"Seed of the random source, zero picks the current time"`
	Export     string  `short:"o" long:"export" description:"Write the final dag structure to this json file"`
	LogDir     string  `long:"logdir" description:"Directory to log output"`
	DebugLevel string  `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, crit}"`
}

// LoadConfig initializes and parses the config using command line options.
func LoadConfig() (*Config, []string, error) {

	// Default config.
	cfg := Config{
		Blocks:     defaultBlocks,
		Creators:   defaultCreators,
		DAGType:    defaultDAGType,
		Anticone:   -1,
		Threshold:  defaultThreshold,
		DebugLevel: defaultDebugLevel,
	}

	parser := flags.NewParser(&cfg, flags.HelpFlag)
	remainingArgs, err := parser.Parse()
	if err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type != flags.ErrHelp {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		} else if ok && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
	}
	appName := filepath.Base(os.Args[0])
	appName = strings.TrimSuffix(appName, filepath.Ext(appName))
	usageMessage := fmt.Sprintf("Use %s -h to show usage", appName)
	funcName := "loadConfig"

	// assign active network params while we're at it
	numNets := 0
	if cfg.TestNet {
		numNets++
		params.ActiveNetParams = &params.TestNetParams
	}
	if cfg.PrivNet {
		numNets++
		params.ActiveNetParams = &params.PrivNetParams
	}
	if numNets == 0 {
		numNets++
		params.ActiveNetParams = &params.MainNetParams
	}

	// Multiple networks can't be selected simultaneously.
	if numNets > 1 {
		str := "%s: the testnet and privnet params can't be " +
			"used together -- choose one of the two"
		err := fmt.Errorf(str, funcName)
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	// Validate the number of creators.
	if cfg.Creators < minCreators || cfg.Creators > maxCreators {
		str := "%s: The specified number of creators is out of " +
			"range -- parsed [%v]"
		err := fmt.Errorf(str, funcName, cfg.Creators)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}
	if cfg.Blocks <= 0 {
		str := "%s: The specified number of blocks is out of " +
			"range -- parsed [%v]"
		err := fmt.Errorf(str, funcName, cfg.Blocks)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}
	if cfg.Adversary < 0 || cfg.Adversary >= 1 {
		str := "%s: The adversary fraction must stay in [0,1) " +
			"-- parsed [%v]"
		err := fmt.Errorf(str, funcName, cfg.Adversary)
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	// Parse, validate, and set debug log level(s).
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		err := fmt.Errorf("%s: %v", funcName, err.Error())
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usageMessage)
		return nil, nil, err
	}

	if cfg.LogDir != "" {
		log.InitLogRotator(filepath.Join(cfg.LogDir, defaultLogName))
	}

	return &cfg, remainingArgs, nil
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
func parseAndSetDebugLevels(debugLevel string) error {

	// When the specified string doesn't have any delimters, treat it as
	// the log level for all subsystems.
	if !strings.Contains(debugLevel, ",") && !strings.Contains(debugLevel, "=") {
		// Validate debug log level.
		lvl, err := log.LvlFromString(debugLevel)
		if err != nil {
			str := "the specified debug level [%v] is invalid"
			return fmt.Errorf(str, debugLevel)
		}
		// Change the logging level for all subsystems.
		log.Glogger().Verbosity(lvl)
		return nil
	}
	return nil
}
