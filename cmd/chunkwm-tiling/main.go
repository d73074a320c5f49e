package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/trws/chunkwm-tiling/internal/command"
	"github.com/trws/chunkwm-tiling/internal/config"
	"github.com/trws/chunkwm-tiling/internal/daemon"
	"github.com/trws/chunkwm-tiling/internal/dockhelper"
	"github.com/trws/chunkwm-tiling/internal/ipc"
	"github.com/trws/chunkwm-tiling/internal/platform"
	"github.com/trws/chunkwm-tiling/internal/query"
	"github.com/trws/chunkwm-tiling/internal/workspace"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "daemon":
		if len(os.Args) > 2 && (os.Args[2] == "help" || os.Args[2] == "-h" || os.Args[2] == "--help") {
			fmt.Fprintln(os.Stdout, "Usage: chunkwm-tiling daemon")
			os.Exit(0)
		}
		if len(os.Args) > 2 {
			fmt.Fprintln(os.Stderr, "daemon takes no arguments")
			os.Exit(2)
		}
		runDaemon()
	case "cmd":
		os.Exit(runCmd(os.Args[2:]))
	case "query":
		os.Exit(runQuery(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: chunkwm-tiling <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  daemon                 Start the tiling daemon (foreground)")
	fmt.Fprintln(w, "  cmd <verb> [args...]   Send one command-channel line to the daemon")
	fmt.Fprintln(w, "  query <op> [args...]   Send one query-channel line to the daemon")
	fmt.Fprintln(w, "  config validate        Validate configuration")
	fmt.Fprintln(w, "  config print           Print configuration")
	fmt.Fprintln(w, "  config explain         Explain every configuration variable's source")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Command-channel verbs: focus, swap, warp, ratio, zoom-fullscreen,")
	fmt.Fprintln(w, "zoom-parent, preselect, rotate, mirror, equalize, toggle-split,")
	fmt.Fprintln(w, "toggle-offset, padding, gap, float, sticky, send-to-desktop, grid,")
	fmt.Fprintln(w, "serialize, deserialize.")
	fmt.Fprintln(w, "Query-channel ops: focused-window, window, focused-desktop, windows,")
	fmt.Fprintln(w, "focused-monitor, monitor-count, desktops-for-monitor, monitor-for-desktop.")
}

func runCmd(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: chunkwm-tiling cmd <verb> [args...]")
		return 2
	}
	client := ipc.NewClient()
	if err := client.Send(strings.Join(args, " ")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func runQuery(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage: chunkwm-tiling query <op> [args...]")
		return 2
	}
	client := query.NewClient()
	body, err := client.Send(strings.Join(args, " "))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Print(body)
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  chunkwm-tiling config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  chunkwm-tiling config print [--path PATH]")
		fmt.Fprintln(os.Stderr, "  chunkwm-tiling config explain [--path PATH]")
		return 2
	}

	loadResult := func(path string) (*config.LoadResult, error) {
		if path == "" {
			defaultPath, err := config.DefaultConfigPath()
			if err != nil {
				return nil, err
			}
			path = defaultPath
		}
		return config.LoadFromPath(path)
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if _, err := loadResult(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		res, err := loadResult(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("%+v\n", res.Config)
		return 0

	case "explain":
		fs := flag.NewFlagSet("explain", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		res, err := loadResult(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		config.Explain(os.Stdout, res)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

// windowLister builds a daemon.WindowLister over every display's
// current-desktop window list, the set of windows the reconciler
// compares the tiling registry's expectations against.
func windowLister(backend *platform.LinuxBackend) daemon.WindowLister {
	return func() ([]uint32, error) {
		displays, err := backend.Displays()
		if err != nil {
			return nil, err
		}
		var ids []uint32
		for _, d := range displays {
			windows, err := backend.ListWindowsOnDisplay(d.ID)
			if err != nil {
				continue
			}
			for _, w := range windows {
				ids = append(ids, uint32(w.ID))
			}
		}
		return ids, nil
	}
}

func runDaemon() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	log.Printf("configuration loaded (bsp_split_ratio=%v, window_focus_cycle=%v)", cfg.BSPSplitRatio, cfg.WindowFocusCycle)

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Fatalf("failed to connect to X11 display: %v", err)
	}
	defer backend.Disconnect()

	access := platform.NewAccessibility(backend)
	registry := workspace.NewRegistry()
	dock := dockhelper.New(nil)
	dispatcher := command.New(access, dock, registry, cfg, nil)

	cmdServer, err := ipc.NewServer(dispatcher)
	if err != nil {
		log.Fatalf("failed to create command-channel server: %v", err)
	}
	if err := cmdServer.Start(); err != nil {
		log.Fatalf("failed to start command-channel server: %v", err)
	}
	defer cmdServer.Stop()

	querySurface := query.New(dispatcher)
	queryServer, err := query.NewServer(querySurface, access)
	if err != nil {
		log.Fatalf("failed to create query-channel server: %v", err)
	}
	if err := queryServer.Start(); err != nil {
		log.Fatalf("failed to start query-channel server: %v", err)
	}
	defer queryServer.Stop()

	syncLogger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	stateSynchronizer := daemon.NewStateSynchronizer(registry, syncLogger)
	reconciler := daemon.NewReconciler(daemon.ReconcilerConfig{
		Interval: 10 * time.Second,
		Logger:   syncLogger,
	}, registry, stateSynchronizer, windowLister(backend))
	reconciler.ReconcileNow()

	reconcilerCtx, reconcilerCancel := context.WithCancel(context.Background())
	defer reconcilerCancel()
	go reconciler.Run(reconcilerCtx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Printf("received %v, shutting down", sig)
		reconcilerCancel()
		queryServer.Stop()
		cmdServer.Stop()
		backend.Disconnect()
		os.Exit(0)
	}()

	log.Println("chunkwm-tiling daemon started, entering event loop")
	backend.EventLoop()
}
