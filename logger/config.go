package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultTimeLocation = "Local"

// GlobalConfig is the application wide logging configuration. Levels can be
// set per logger name, loggers without an entry use the default level.
type GlobalConfig struct {
	DefaultLevel    LogLevel
	PackageLevels   map[string]LogLevel
	Writer          io.Writer
	ConsoleFormat   bool
	ShowCaller      bool
	TimeLocation    string
	ShowGoroutineID bool
}

// developerConfiguration is used when nothing else has been configured by
// the time the first log call is made.
func developerConfiguration() GlobalConfig {
	return GlobalConfig{
		DefaultLevel:    DEBUG,
		Writer:          os.Stdout,
		ConsoleFormat:   true,
		ShowCaller:      true,
		ShowGoroutineID: true,
	}
}

func loadGlobalConfigFromFile(fileName string) (GlobalConfig, error) {
	type loggerConfiguration struct {
		DefaultLevel    string            `yaml:"defaultLevel"`
		PackageLevels   map[string]string `yaml:"packageLevels"`
		OutputPath      string            `yaml:"outputPath"`
		ConsoleFormat   bool              `yaml:"consoleFormat"`
		ShowCaller      bool              `yaml:"showCaller"`
		TimeLocation    string            `yaml:"timeLocation"`
		ShowGoroutineID bool              `yaml:"showGoroutineID"`
	}

	yamlFile, err := os.ReadFile(filepath.Clean(fileName))
	if err != nil {
		return GlobalConfig{}, fmt.Errorf("failed to read logger config file: %w", err)
	}
	config := &loggerConfiguration{}
	if err := yaml.Unmarshal(yamlFile, config); err != nil {
		return GlobalConfig{}, fmt.Errorf("failed to unmarshal logger config: %w", err)
	}

	globalConfig := GlobalConfig{
		DefaultLevel:    LevelFromString(config.DefaultLevel),
		PackageLevels:   make(map[string]LogLevel),
		Writer:          os.Stdout,
		ConsoleFormat:   config.ConsoleFormat,
		ShowCaller:      config.ShowCaller,
		TimeLocation:    config.TimeLocation,
		ShowGoroutineID: config.ShowGoroutineID,
	}
	if config.OutputPath != "" {
		file, err := os.OpenFile(config.OutputPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600) // -rw-------
		if err != nil {
			return GlobalConfig{}, fmt.Errorf("failed to open log file: %w", err)
		}
		globalConfig.Writer = file
	}
	for name, level := range config.PackageLevels {
		globalConfig.PackageLevels[name] = LevelFromString(level)
	}

	return globalConfig, nil
}
