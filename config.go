// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/cybrota/arbor/structures"
)

const configFileName = ".arbor.yaml"

type HashConfig struct {
	Capacity int `yaml:"capacity"`
}

type BinaryTreeConfig struct {
	Seed *int64 `yaml:"seed"`
}

type UIConfig struct {
	DefaultStructure string `yaml:"default_structure"`
	ShowHeights      bool   `yaml:"show_heights"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

type Config struct {
	Hash       HashConfig       `yaml:"hash"`
	BinaryTree BinaryTreeConfig `yaml:"binary_tree"`
	UI         UIConfig         `yaml:"ui"`
	Log        LogConfig        `yaml:"log"`
}

var defaultSeed int64 = 45

var defaultConfig = Config{
	Hash: HashConfig{
		Capacity: structures.DefaultCapacity,
	},
	BinaryTree: BinaryTreeConfig{
		Seed: &defaultSeed,
	},
	UI: UIConfig{
		DefaultStructure: "avl",
		ShowHeights:      true,
	},
	Log: LogConfig{
		Level:   "info",
		Console: true,
	},
}

// LoadConfig reads ~/.arbor.yaml. Any problem with the file yields the
// defaults, and keys missing from the file keep their default values.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", configPath).Msg("cannot read config, using defaults")
		return defaults(), nil
	}

	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		log.Warn().Err(err).Str("path", configPath).Msg("malformed config, using defaults")
		return defaults(), nil
	}
	if config.Hash.Capacity <= 0 {
		config.Hash.Capacity = structures.DefaultCapacity
	}

	return config, nil
}

func defaults() *Config {
	c := defaultConfig
	seed := *defaultConfig.BinaryTree.Seed
	c.BinaryTree.Seed = &seed
	return &c
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func displaySettings() {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Printf("❌ Failed to get config path: %v\n", err)
		return
	}

	config, err := LoadConfig()
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Printf("📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Printf("❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Printf("✅ Created default configuration at: %s\n\n", configPath)
	}

	fmt.Printf("🔧 Arbor Configuration Settings\n")
	fmt.Printf("═══════════════════════════════\n\n")

	if configExists {
		fmt.Printf("📍 Config file: %s\n", configPath)
	} else {
		fmt.Printf("📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Printf("📊 Current settings:\n\n")
	fmt.Print(formatSettings(config))

	fmt.Printf("💡 Edit %s to change these values.\n", configPath)
}

func formatSettings(config *Config) string {
	seed := "none (starts empty)"
	if config.BinaryTree.Seed != nil {
		seed = fmt.Sprint(*config.BinaryTree.Seed)
	}

	return fmt.Sprintf(`🔑 %sHash Table:%s
  • %scapacity%s: %d
    Number of buckets keys are spread across

🌳 %sBinary Tree:%s
  • %sseed%s: %s
    Root value the tree starts with and returns to on clear

🖥  %sInterface:%s
  • %sdefault_structure%s: %s
  • %sshow_heights%s: %t

📜 %sLogging:%s
  • %slevel%s: %s
  • %sconsole%s: %t

`,
		Green, Reset, Green, Reset, config.Hash.Capacity,
		Green, Reset, Green, Reset, seed,
		Green, Reset, Green, Reset, config.UI.DefaultStructure, Green, Reset, config.UI.ShowHeights,
		Green, Reset, Green, Reset, config.Log.Level, Green, Reset, config.Log.Console)
}
