// Command chromatic colors DIMACS graphs, filters matrix graph pairs for
// isomorphism and carries a few helpers around them.
//
//	chromatic [klog flags] color [-kinds ff,wp] [-repeat N] [-verify] [-db DIR] FILE...
//	chromatic [klog flags] iso FILE
//	chromatic [klog flags] dilate [-erode] [-steps N] [-o OUT] FILE
//	chromatic [klog flags] gen -shape NAME [-n N] [-k K] [-p P] [-seed S] [-o OUT]
//	chromatic [klog flags] runs -db DIR [INSTANCE]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	flag.Usage = usage
	flag.Parse()

	code := 0
	if err := run(flag.Args(), os.Stdout); err != nil {
		klog.Errorf("chromatic: %v", err)
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] color|iso|dilate|gen|runs [args]\n", os.Args[0])
	flag.PrintDefaults()
}
