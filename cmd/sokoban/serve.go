package main

import (
	"fmt"
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Sokoban SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game, starting in the level picker.
All sessions play the same level catalog.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.sokoban/host_key

Examples:
  sokoban serve                           # Listen on :23234 with auto-generated key
  sokoban serve --ssh :2222               # Listen on port 2222
  sokoban serve --host-key ./my_host_key  # Use specific host key
  sokoban serve --pack classic            # Serve a pack from the library

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	addSourceFlags(serveCmd)
	serveCmd.Flags().IntVar(&flagLevel, "level", 0, "Level under the picker cursor when a session opens")
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatal("%v", err)
	}

	catalog, err := loadCatalog(cfg)
	if err != nil {
		fatal("%v", err)
	}

	sokoban.Configure(sokoban.Options{
		Catalog: catalog,
		Display: cfg.Display,
	})

	serverCfg := tui.DefaultSSHServerConfig()
	serverCfg.Address = flagSSHAddr
	serverCfg.HostKeyPath = flagHostKey
	serverCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	serverCfg.GameID = sokoban.ID
	serverCfg.Catalog = catalog
	serverCfg.StartLevel = cfg.Levels.StartLevel

	server, err := tui.NewSSHServer(serverCfg)
	if err != nil {
		fatal("creating server: %v", err)
	}

	fmt.Printf("Starting Sokoban SSH server on %s (%d levels)\n", serverCfg.Address, catalog.Count())
	fmt.Println(connectHint(serverCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("server: %v", err)
	}
}

// connectHint tells local users how to reach a server listening on addr.
func connectHint(addr string) string {
	port := addr
	if _, p, err := net.SplitHostPort(addr); err == nil {
		port = p
	}
	if port == "" || port == "22" {
		return "Connect with: ssh localhost"
	}
	return "Connect with: ssh localhost -p " + port
}
