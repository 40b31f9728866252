package config

import (
	"errors"
	"flag"
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

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. The host part may be empty ("listen on all interfaces").
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	a.Host = hostAndPort[0]
	a.Port = port
	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-environment deployment environment ("production" enables Turnstile)
//	-steam-api-key Steam Web API key
//	-turnstile-secret Turnstile server-side secret
//	-request-timeout outbound request timeout (e.g., "15s", "1m")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var environment string
	var steamAPIKey string
	var turnstileSecret string
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&environment, "environment", "", "Deployment environment")
	flag.StringVar(&steamAPIKey, "steam-api-key", "", "Steam Web API key")
	flag.StringVar(&turnstileSecret, "turnstile-secret", "", "Turnstile secret key")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Outbound request timeout (e.g., 15s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment: environment,
		},
		Steam: Steam{
			APIKey: steamAPIKey,
		},
		Turnstile: Turnstile{
			SecretKey: turnstileSecret,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
