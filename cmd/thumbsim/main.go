// Command thumbsim runs a flat Thumb-1 binary image under the
// thumbsim core: headless to completion, under an interactive tcell
// TUI debugger, or behind an HTTP/WebSocket API server for a remote
// front end to drive.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thumbsim/core/api"
	"github.com/thumbsim/core/bus"
	"github.com/thumbsim/core/config"
	"github.com/thumbsim/core/core"
	"github.com/thumbsim/core/debugger"
	"github.com/thumbsim/core/loader"
	"github.com/thumbsim/core/trace"
)

// Version information, overridable at build time with:
// go build -ldflags "-X main.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "Show version information")
		tuiMode     = flag.Bool("tui", false, "Run under the interactive TUI debugger")
		apiServer   = flag.Bool("api-server", false, "Start the HTTP/WebSocket API server")
		apiAddr     = flag.String("addr", "127.0.0.1:7777", "Listen address (used with -api-server)")
		configPath  = flag.String("config", "", "Path to a thumbsim.toml config file (default: platform config dir)")
		loadAddr    = flag.Uint("load-addr", 0, "Address the image is loaded at")
		entryPoint  = flag.Uint("entry", 0, "Entry point address (defaults to -load-addr)")
		stackTop    = flag.Uint("stack-top", 0, "Initial stack pointer (defaults to config's stack_top)")
		maxCycles   = flag.Uint64("max-cycles", 0, "Maximum cycles before a headless run gives up (defaults to config's max_cycles)")
		enableTrace = flag.Bool("trace", false, "Enable the execution trace")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("thumbsim %s (%s)\n", Version, Commit)
		os.Exit(0)
	}

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "thumbsim: config error: %v\n", err)
		os.Exit(1)
	}
	if *enableTrace {
		cfg.Execution.EnableTrace = true
	}
	if *maxCycles != 0 {
		cfg.Execution.MaxCycles = *maxCycles
	}

	if *apiServer {
		runAPIServer(*apiAddr, cfg)
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: thumbsim [flags] <image-file>")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := runImage(flag.Arg(0), cfg, *tuiMode, uint32(*loadAddr), uint32(*entryPoint), uint32(*stackTop)); err != nil {
		fmt.Fprintf(os.Stderr, "thumbsim: %v\n", err)
		os.Exit(1)
	}
}

func runImage(path string, cfg *config.Config, tui bool, loadAddr, entryPoint, stackTopFlag uint32) error {
	stackTop := stackTopFlag
	if stackTop == 0 {
		if _, err := fmt.Sscanf(cfg.Execution.StackTop, "0x%x", &stackTop); err != nil {
			stackTop = bus.StackStart + bus.StackSize
		}
	}
	entry := entryPoint
	if entry == 0 {
		entry = loadAddr
	}

	img, err := loader.ReadFile(path, loadAddr, stackTop)
	if err != nil {
		return err
	}
	img.EntryPoint = entry

	mem := bus.NewMemory()
	c := core.NewCore(path, mem, core.BuildDecoderTable())
	if err := loader.Load(mem, c, img); err != nil {
		return err
	}

	var tr *trace.ExecutionTrace
	if cfg.Execution.EnableTrace {
		f, err := os.Create(cfg.Trace.OutputFile)
		if err != nil {
			return fmt.Errorf("thumbsim: failed to open trace file: %w", err)
		}
		defer f.Close()
		tr = trace.New(f)
		tr.Enabled = true
		tr.MaxEntries = cfg.Trace.MaxEntries
	}

	session := debugger.NewSession(c, tr, cfg.Debugger.HistorySize)

	if tui {
		return debugger.NewTUI(session).Run()
	}

	maxCycles := cfg.Execution.MaxCycles
	if maxCycles == 0 {
		maxCycles = 10_000_000
	}
	if _, err := session.Continue(int(maxCycles)); err != nil {
		return fmt.Errorf("execution halted: %w", err)
	}
	fmt.Println(session.RegisterDump())
	return nil
}

func runAPIServer(addr string, cfg *config.Config) {
	server := api.NewServer(addr, cfg)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			fmt.Fprintf(os.Stderr, "thumbsim: api server error: %v\n", err)
			os.Exit(1)
		}
	}()

	<-sigChan
	fmt.Println("\nshutting down api server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "thumbsim: error during shutdown: %v\n", err)
		os.Exit(1)
	}
}
