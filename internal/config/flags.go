// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args.
//
// Flags:
//
//	-a API base URL used by the client
//	-request-timeout outbound request timeout (e.g. "15s")
//	-rate-limit outbound requests per second, 0 disables throttling
//	-rate-burst outbound burst size
//	-d database DSN
//	-session-file JSON session file used instead of SQLite
//	-server-address server listen address in format [host]:[port]
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-log-file client log file
//	-open initial list location, also accepted as the first positional argument
//	-c/-config JSON or YAML config file path
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("inventory-keeper", flag.ContinueOnError)

	var serverAddress NetAddress
	var adapterAddress string
	var requestTimeout time.Duration
	var rateLimit float64
	var rateBurst int
	var databaseDSN string
	var sessionFile string
	var tokenSignKey string
	var tokenIssuer string
	var logFile string
	var startLocation string
	var configPath string

	fs.StringVar(&adapterAddress, "a", "", "API base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.Float64Var(&rateLimit, "rate-limit", 0, "Outbound requests per second, 0 disables throttling")
	fs.IntVar(&rateBurst, "rate-burst", 0, "Outbound burst size")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&sessionFile, "session-file", "", "JSON session file")
	fs.Var(&serverAddress, "server-address", "Server listen address host:port")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&logFile, "log-file", "", "Client log file")
	fs.StringVar(&startLocation, "open", "", "Initial list location, e.g. /projects?page=2")
	fs.StringVar(&configPath, "c", "", "JSON or YAML config file path")
	fs.StringVar(&configPath, "config", "", "JSON or YAML config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}
	if startLocation == "" && fs.NArg() > 0 {
		startLocation = fs.Arg(0)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
		},
		Storage: Storage{
			DB:          DB{DSN: databaseDSN},
			SessionFile: sessionFile,
		},
		Server: Server{
			HTTPAddress: serverAddress.String(),
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
			RateLimit:      rateLimit,
			RateBurst:      rateBurst,
		},
		Log:            Log{File: logFile},
		StartLocation:  startLocation,
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string, or "" when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses an address of the form host:port. The host must be an IP
// address or "localhost"; an empty host listens on all interfaces.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
