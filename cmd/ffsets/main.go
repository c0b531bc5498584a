package main

import (
	"flag"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/ffgram/ll/reader"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// tracing keys of the packages involved
var traceKeys = []string{"ffgram.cli", "ffgram.ll", "ffgram.reader", "ffgram.scanner"}

func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	fname := flag.String("format", "compact", "Grammar notation [compact|bnf]")
	htmlf := flag.String("html", "", "Export tables to HTML file")
	flag.Parse()
	setTraceLevel(traceLevel(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	format, err := reader.ParseFormat(*fname)
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(2)
	}
	intp := NewIntp(format)
	//
	// batch mode: analyse a grammar file
	if flag.NArg() > 0 {
		if err := intp.loadFile(flag.Arg(0)); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		if _, err := intp.Eval(":show"); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(1)
		}
		if *htmlf != "" {
			if err := intp.writeHTML(*htmlf); err != nil {
				pterm.Error.Println(err.Error())
				os.Exit(1)
			}
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.New("ffsets> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	intp.repl = repl
	pterm.Info.Println("Welcome to ffsets")
	pterm.Info.Printf("Enter productions in %s notation, :help lists commands\n", format)
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	if *htmlf != "" {
		if err := intp.writeHTML(*htmlf); err != nil {
			pterm.Error.Println(err.Error())
		}
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Warning.Prefix = pterm.Prefix{
		Text:  "  Warning",
		Style: pterm.NewStyle(pterm.BgYellow, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
