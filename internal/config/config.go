// Package config provides types for handling configuration parameters.
package config

import (
	"flag"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Storage kinds accepted by the STORAGE variable.
const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config handles server-related constants and parameters.
type Config struct {
	Port          string `env:"PORT" env-default:"3000" json:"port"`
	DatabaseDSN   string `env:"DATABASE_DSN" json:"database_dsn"`
	SQLitePath    string `env:"SQLITE_PATH" env-default:"db/data.sqlite" json:"sqlite_path"`
	StorageKind   string `env:"STORAGE" env-default:"sqlite" json:"storage"`
	EnableHTTPS   bool   `env:"ENABLE_HTTPS" json:"enable_https"`
	BaseDomain    string `env:"BASE_DOMAIN" json:"base_domain"`
	GRPCAddress   string `env:"GRPC_ADDRESS" json:"grpc_address"`
	TrustedSubnet string `env:"TRUSTED_SUBNET" json:"trusted_subnet"`
}

// NewDefaultConfiguration returns an empty configuration to be filled by Parse.
func NewDefaultConfiguration() *Config {
	return &Config{}
}

// Parse fills the configuration from environment variables, an optional JSON
// config file and command line flags. Flags win over environment, environment
// wins over the file.
func (c *Config) Parse() error {
	return c.parse(flag.CommandLine, os.Args[1:])
}

// Addr returns the listening address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) parse(fs *flag.FlagSet, args []string) error {
	var (
		port, dsn, sqlitePath, storageKind string
		domain, grpcAddress, subnet, path  string
		https                              bool
	)
	fs.StringVar(&port, "p", "", "Listening port")
	fs.StringVar(&dsn, "d", "", "PostgreSQL DSN")
	fs.StringVar(&sqlitePath, "f", "", "SQLite file path")
	fs.StringVar(&storageKind, "s", "", "Storage kind (sqlite or memory)")
	fs.StringVar(&domain, "b", "", "Domain used for HTTPS certificates")
	fs.StringVar(&grpcAddress, "g", "", "gRPC health address")
	fs.StringVar(&subnet, "t", "", "Trusted subnet for /metrics")
	fs.StringVar(&path, "c", os.Getenv("CONFIG"), "JSON config file path")
	fs.BoolVar(&https, "https", false, "Serve HTTPS with autocert")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, c)
	} else {
		err = cleanenv.ReadEnv(c)
	}
	if err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "p":
			c.Port = port
		case "d":
			c.DatabaseDSN = dsn
		case "f":
			c.SQLitePath = sqlitePath
		case "s":
			c.StorageKind = storageKind
		case "b":
			c.BaseDomain = domain
		case "g":
			c.GRPCAddress = grpcAddress
		case "t":
			c.TrustedSubnet = subnet
		case "https":
			c.EnableHTTPS = https
		}
	})
	return nil
}
