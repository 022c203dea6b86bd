package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostwire/netparams"
	"github.com/hostwire/netparams/settings"
	"github.com/hostwire/netparams/system"
)

var (
	showVers bool
	logPath  string
	debug    bool
	asJSON   bool
)

var rootCmd = &cobra.Command{
	Use:   filepath.Base(os.Args[0]),
	Short: "Print the host's DNS and default gateway configuration",
	Run: func(cmd *cobra.Command, args []string) {
		if showVers {
			fmt.Fprintf(os.Stderr, "%s version %s on %s %s\n",
				settings.Name, settings.Version, runtime.GOOS, runtime.GOARCH)
			os.Exit(0)
		}
		run()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&asJSON, "json", "j", false, "Print the results as JSON")
	rootCmd.PersistentFlags().StringVarP(&logPath, "log", "l", "", "Log file path. Log to stderr if not specified")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVers, "version", "v", false, "Print the version and exit")
}

// Execute runs the netparams CLI.
func Execute() {
	// Send all output except the report to stderr.
	rootCmd.SetOut(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type report struct {
	DomainName  string   `json:"domain_name"`
	DNSServers  []string `json:"dns_servers"`
	IPv4Gateway string   `json:"ipv4_gateway"`
	IPv6Gateway string   `json:"ipv6_gateway"`
}

func run() {
	logger := initLogger(debug, logPath)
	defer func() { _ = logger.Sync() }()

	if debug {
		logger.Debug(system.GetHostSummary())
	}

	p := netparams.New(logger)
	r := report{
		DomainName:  p.DomainName(),
		DNSServers:  p.DNSServers(),
		IPv4Gateway: p.IPv4DefaultGateway(),
		IPv6Gateway: p.IPv6DefaultGateway(),
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			logger.Errorf("Could not encode report: %v", err)
			os.Exit(1)
		}
		return
	}

	fmt.Printf("Domain name:  %s\n", orUnknown(r.DomainName))
	fmt.Printf("DNS servers:  %s\n", orUnknown(strings.Join(r.DNSServers, ", ")))
	fmt.Printf("IPv4 gateway: %s\n", orUnknown(r.IPv4Gateway))
	fmt.Printf("IPv6 gateway: %s\n", orUnknown(r.IPv6Gateway))
}

// orUnknown makes empty results explicit in the text report. The
// resolvers cannot distinguish "not configured" from "lookup failed".
func orUnknown(s string) string {
	if s == "" {
		return "(unknown)"
	}
	return s
}
