package server

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ServerConfig represents the complete server configuration. The blocks
// are pointers so a config file may omit either one entirely.
type ServerConfig struct {
	Server *ServerSettings `hcl:"server,block"`
	Table  *TableSettings  `hcl:"table,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// TableSettings controls the tables rooms are created with
type TableSettings struct {
	MaxSeats        int `hcl:"max_seats,optional"`
	SmallBlind      int `hcl:"small_blind,optional"`
	BigBlind        int `hcl:"big_blind,optional"`
	StartingChips   int `hcl:"starting_chips,optional"`
	TurnTimeoutSecs int `hcl:"turn_timeout_seconds,optional"`
}

// DefaultServerConfig returns default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Server: &ServerSettings{
			Address:  "localhost",
			Port:     8080,
			LogLevel: "info",
		},
		Table: &TableSettings{
			MaxSeats:        6,
			SmallBlind:      10,
			BigBlind:        20,
			StartingChips:   1000,
			TurnTimeoutSecs: 30,
		},
	}
}

// LoadServerConfig loads server configuration from an HCL file. A missing
// file yields the defaults; values absent from the file fall back to the
// defaults individually.
func LoadServerConfig(filename string) (*ServerConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultServerConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config ServerConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	defaults := DefaultServerConfig()
	if config.Server == nil {
		config.Server = defaults.Server
	}
	if config.Table == nil {
		config.Table = defaults.Table
	}
	if config.Server.Address == "" {
		config.Server.Address = defaults.Server.Address
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = defaults.Server.LogLevel
	}
	if config.Table.MaxSeats == 0 {
		config.Table.MaxSeats = defaults.Table.MaxSeats
	}
	if config.Table.SmallBlind == 0 {
		config.Table.SmallBlind = defaults.Table.SmallBlind
	}
	if config.Table.BigBlind == 0 {
		config.Table.BigBlind = defaults.Table.BigBlind
	}
	if config.Table.StartingChips == 0 {
		config.Table.StartingChips = defaults.Table.StartingChips
	}
	if config.Table.TurnTimeoutSecs == 0 {
		config.Table.TurnTimeoutSecs = defaults.Table.TurnTimeoutSecs
	}

	if config.Table.BigBlind <= config.Table.SmallBlind {
		return nil, fmt.Errorf("big blind (%d) must exceed small blind (%d)",
			config.Table.BigBlind, config.Table.SmallBlind)
	}

	return &config, nil
}
