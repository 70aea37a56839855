// Package config provides functionality for managing configuration options
// for the pwncheck CLI and server using command-line flags, an optional JSON
// config file and environment variables.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Duration is a time.Duration that reads from JSON as a string like "5s".
type Duration time.Duration

// UnmarshalJSON accepts either a duration string or a number of nanoseconds.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		v, err := time.ParseDuration(s)
		if err != nil {
			return err
		}
		*d = Duration(v)
		return nil
	}
	var n int64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("invalid duration %s", b)
	}
	*d = Duration(n)
	return nil
}

// Options holds the configuration values for the application.
type Options struct {
	// APIURL is the base URL of the range API.
	APIURL string `json:"api_url"`
	// UserAgent is sent with every range request.
	UserAgent string `json:"user_agent"`
	// Timeout bounds a single range request.
	Timeout Duration `json:"timeout"`
	// Padding requests padded range responses.
	Padding bool `json:"padding"`
	// Retries is the number of extra attempts on transport errors and 5xx.
	Retries uint64 `json:"retries"`
	// CAFile is an optional CA bundle for a private range mirror.
	CAFile string `json:"ca_file"`
	// LogLevel is the zap level name.
	LogLevel string `json:"log_level"`

	// Port defines the server's listening address (ip:port).
	Port string `json:"address"`
	// DatabaseDSN enables the check audit log when set.
	DatabaseDSN string `json:"database_dsn"`
	// Retention is how long audit rows are kept.
	Retention Duration `json:"retention"`
	// TLSCert and TLSKey enable HTTPS when both are set.
	TLSCert string `json:"tls_cert"`
	TLSKey  string `json:"tls_key"`

	// Config is the path to the Config file.
	Config string `json:"-"`
	// Version asks the binary to print build metadata and exit.
	Version bool `json:"-"`
	// Args are the positional arguments left after flag parsing.
	Args []string `json:"-"`
}

func registerCommon(fs *flag.FlagSet, o *Options) {
	fs.StringVar(&o.APIURL, "api", "https://api.pwnedpasswords.com", "range API base URL")
	fs.StringVar(&o.UserAgent, "user-agent", "pwncheck/1.0", "User-Agent sent to the range API")
	fs.Func("timeout", "range request timeout (default 10s)", func(s string) error {
		v, err := time.ParseDuration(s)
		o.Timeout = Duration(v)
		return err
	})
	fs.BoolVar(&o.Padding, "padding", true, "request padded range responses")
	fs.Uint64Var(&o.Retries, "retries", 0, "extra attempts on network errors and 5xx responses")
	fs.StringVar(&o.CAFile, "ca", "", "path to CA cert for a private range mirror")
	fs.StringVar(&o.LogLevel, "log-level", "warn", "log level: debug | info | warn | error")
	fs.StringVar(&o.Config, "config", "config.json", "path to config file")
	fs.StringVar(&o.Config, "c", "config.json", "path to config file (shorthand)")
	fs.BoolVar(&o.Version, "version", false, "show build version and date")
}

// ParseClient parses the CLI flags in args (without the program name).
// The password list path is left in Options.Args.
func ParseClient(args []string) (*Options, error) {
	o := &Options{Timeout: Duration(10 * time.Second)}
	fs := flag.NewFlagSet("pwncheck", flag.ContinueOnError)
	registerCommon(fs, o)
	return parse(fs, o, args)
}

// ParseServer parses the server flags in args (without the program name).
func ParseServer(args []string) (*Options, error) {
	o := &Options{Timeout: Duration(10 * time.Second), Retention: Duration(30 * 24 * time.Hour)}
	fs := flag.NewFlagSet("pwncheck-server", flag.ContinueOnError)
	registerCommon(fs, o)
	fs.StringVar(&o.Port, "a", "localhost:8080", "run on ip:port server")
	fs.StringVar(&o.DatabaseDSN, "d", "", "db address")
	fs.Func("retention", "how long audit records are kept (default 720h)", func(s string) error {
		v, err := time.ParseDuration(s)
		o.Retention = Duration(v)
		return err
	})
	fs.StringVar(&o.TLSCert, "tls-cert", "", "path to server TLS certificate")
	fs.StringVar(&o.TLSKey, "tls-key", "", "path to server TLS key")
	return parse(fs, o, args)
}

func parse(fs *flag.FlagSet, o *Options, args []string) (*Options, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.Args = fs.Args()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		o.Config = configPath
	}

	if o.Config != "" {
		if _, err := os.Stat(o.Config); err == nil {
			data, err := os.ReadFile(o.Config)
			if err != nil {
				return nil, fmt.Errorf("error while reading config file: %w", err)
			}
			if err := json.Unmarshal(data, o); err != nil {
				return nil, fmt.Errorf("error while parsing config file: %w", err)
			}
		}
	}

	if v := os.Getenv("PWNCHECK_API_URL"); v != "" {
		o.APIURL = v
	}
	if v := os.Getenv("PWNCHECK_USER_AGENT"); v != "" {
		o.UserAgent = v
	}
	if v := os.Getenv("PWNCHECK_LOG_LEVEL"); v != "" {
		o.LogLevel = v
	}
	if v := os.Getenv("PWNCHECK_RETRIES"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid PWNCHECK_RETRIES: %w", err)
		}
		o.Retries = n
	}
	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		o.Port = serverAddress
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		o.DatabaseDSN = dsn
	}

	if o.Timeout < 0 {
		return nil, errors.New("timeout must not be negative")
	}
	return o, nil
}
