package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tetrotime/internal/clock"
	"github.com/vovakirdan/tetrotime/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the tetrotime SSH server",
	Long: `Start an SSH server that shows the clock to everyone who connects.

Each SSH connection gets its own clock with its own piece colors.
Server settings come from the server section of the config file; flags
override them.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tetrotime/host_key

Examples:
  tetrotime serve                           # Listen on :23234 with auto-generated key
  tetrotime serve --ssh :2222               # Listen on port 2222
  tetrotime serve --host-key ./my_host_key  # Use specific host key
  tetrotime serve --colorscheme rainbow     # Rainbow pieces for everyone

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle time before disconnecting (e.g. 30m)")
	serveCmd.Flags().StringVar(&flagColorscheme, "colorscheme", "", "Colorscheme for new pieces (see 'tetrotime schemes')")
}

func runServe(cmd *cobra.Command, _ []string) {
	logger := newLogger(os.Stderr)

	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	idle, err := cfg.IdleTimeout()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	serverCfg := tui.SSHServerConfig{
		Address:     cfg.Server.Address,
		HostKeyPath: cfg.Server.HostKey,
		IdleTimeout: idle,
		FPS:         cfg.Display.FPS,
	}
	if cmd.Flags().Changed("ssh") {
		serverCfg.Address = flagSSHAddr
	}
	if cmd.Flags().Changed("host-key") {
		serverCfg.HostKeyPath = flagHostKey
	}
	if cmd.Flags().Changed("idle-timeout") {
		serverCfg.IdleTimeout = flagIdleTimeout
	}

	settings, err := buildSettings(cfg, clock.Clock{}, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	server, err := tui.NewSSHServer(serverCfg, settings, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting tetrotime SSH server on %s\n", serverCfg.Address)
	fmt.Printf("Connect with: ssh -t localhost -p %s\n", portOf(serverCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
