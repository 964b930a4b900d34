package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"github.com/cloudradar-monitoring/devlist"
)

var (
	// set on build:
	// go build -o devlist -ldflags="-X main.version=$(git describe --always --long --dirty --tag)" github.com/cloudradar-monitoring/devlist/cmd/devlist
	version string
)

func fatal(msg string) {
	_, _ = fmt.Fprintln(os.Stderr, msg)
	os.Exit(1)
}

func main() {
	cfgPathPtr := flag.String("c", devlist.DefaultCfgPath, "config file path")
	logLevelPtr := flag.String("v", "", "log level, overrides the level in config file (values \"error\",\"info\",\"debug\")")
	formatPtr := flag.String("f", "", "output format, overrides the format in config file (values \"text\",\"json\")")
	intervalPtr := flag.Float64("i", -1, "list devices every N seconds until interrupted (0 lists once)")
	printConfigPtr := flag.Bool("p", false, "print the active config")
	versionPtr := flag.Bool("version", false, "show the devlist version")

	flag.Parse()

	// version should be handled first to ensure it will be accessible in case of fatal errors before
	handleFlagVersion(*versionPtr)

	cfg, err := devlist.HandleAllConfigSetup(*cfgPathPtr)
	if err != nil {
		fatal(fmt.Sprintf("Failed to handle devlist configuration: %s", err.Error()))
	}

	handleFlagFormat(cfg, *formatPtr)
	handleFlagInterval(cfg, *intervalPtr)
	handleFlagPrintConfig(*printConfigPtr, cfg)

	dl, err := devlist.New(cfg, *cfgPathPtr, version)
	if err != nil {
		fatal(err.Error())
	}
	defer dl.Close()

	dl.ConfigureLogger(os.Stderr)

	// log level set in flag has a precedence
	handleFlagLogLevel(dl, *logLevelPtr)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc,
		syscall.SIGHUP,
		syscall.SIGINT,
		syscall.SIGTERM)
	go func() {
		sig := <-sigc
		log.Infof("Got %s signal. Finishing the pass and exit...", sig.String())
		cancel()
	}()

	if err := dl.Watch(ctx, os.Stdout); err != nil {
		log.Error(err.Error())
	}
}

func handleFlagVersion(versionFlag bool) {
	if versionFlag {
		fmt.Printf("devlist v%s released under MIT license.\n", version)
		os.Exit(0)
	}
}

func handleFlagPrintConfig(printConfig bool, cfg *devlist.Config) {
	if printConfig {
		fmt.Println(cfg.DumpToml())
		os.Exit(0)
	}
}

func handleFlagFormat(cfg *devlist.Config, format string) {
	if format == "" {
		return
	}
	if format != devlist.FormatText && format != devlist.FormatJSON {
		fatal(fmt.Sprintf("Invalid output format: \"%s\"", format))
	}
	cfg.Format = format
}

func handleFlagInterval(cfg *devlist.Config, interval float64) {
	if interval >= 0 {
		cfg.Interval = interval
	}
}

func handleFlagLogLevel(dl *devlist.Devlist, logLevel string) {
	lvl := devlist.LogLevel(logLevel)
	if lvl.IsValid() {
		dl.SetLogLevel(lvl)
	} else if logLevel != "" {
		log.Warnf("Invalid log level: \"%s\". Set to default: \"%s\"", logLevel, dl.Config.LogLevel)
	}
}
