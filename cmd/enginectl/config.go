package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/omeid/uconfig"
	"github.com/omeid/uconfig/plugins"
	"github.com/omeid/uconfig/plugins/file"
)

// configFilename is the filename of the config file automatically loaded
// from the current directory, if present.
var configFilename = "config.json"

type config struct {
	Metrics struct {
		Port string `default:"9090"`
	}
	Log struct {
		Human bool `default:"false"`
		Debug bool `default:"false"`
	}
	HTTP struct {
		Port string `default:"8080"`
	}
	BlockList string `default:"blocks.json"`
	Watch     bool   `default:"true"`
}

func setupConfig() *config {
	fileBytes, err := os.ReadFile(configFilename)
	fileStr := string(fileBytes)
	var plugs []plugins.Plugin
	if err == nil {
		fileStr = os.ExpandEnv(fileStr)
		plugs = append(plugs, file.NewReader(strings.NewReader(fileStr), json.Unmarshal))
	}

	conf := &config{}
	c, err := uconfig.Classic(&conf, file.Files{}, plugs...)
	if err != nil {
		fmt.Printf("invalid configuration: %s", err)
		c.Usage()
		os.Exit(1)
	}

	return conf
}
