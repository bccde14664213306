package main

import (
	"flag"
	"strconv"

	"github.com/plan-systems/klog"
)

// setupLogging routes klog to stderr, or to logFile when set (the terminal UI
// owns stderr while it runs).
func setupLogging(logFile string, verbosity int, interactive bool) {
	fset := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fset)

	toStderr := logFile == "" && !interactive
	fset.Set("logtostderr", strconv.FormatBool(toStderr))
	fset.Set("alsologtostderr", "false")
	fset.Set("v", strconv.Itoa(verbosity))
	if logFile != "" {
		fset.Set("log_file", logFile)
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          toStderr,
	})
}
