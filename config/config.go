package config

import (
	"embed"
	"encoding/json"
	"io/fs"
	"log"
	"os"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/text/unicode/norm"
)

//go:embed config.json
var config embed.FS
var confDir string
var confName string = "config.json"
var confFile string

// EditorConfig holds the outline-specific settings loaded from disk
// (SPEC_FULL.md §2.3) — tab width used when expanding indentation into
// on-screen columns, whether to draw line numbers in cmd/outlineed, and
// the glyph used to mark a collapsed paragraph. IndentGuides is loaded
// from the file but nothing in cmd/outlineed reads it; no indent guides
// are drawn.
type EditorConfig struct {
	TabWidth        int    `json:"tabWidth"`
	IndentGuides    bool   `json:"indentGuides"`
	ShowLineNumbers bool   `json:"showLineNumbers"`
	CollapsedMarker string `json:"collapsedMarker"`
}

type Config struct {
	log          *log.Logger
	watcher      *fsnotify.Watcher
	EditorConfig *EditorConfig
}

func NewConfig(log *log.Logger) *Config {
	return &Config{log: log, EditorConfig: &EditorConfig{}}
}

// TODO make this a component and inject things like the logger
func (cfg *Config) Init() {
	if os.Getenv("XDG_CONFIG_HOME") == "" {
		confDir = os.Getenv("HOME") + "/.outlineed"
	} else {
		confDir = os.Getenv("XDG_CONFIG_HOME") + "/outlineed"
	}
	confFile = confDir + "/" + confName

	cfg.writeConfigIfMissing()

	cfg.readConfigIntoMemory()

	go cfg.rereadConfigOnFileChange()
}

func (cfg *Config) writeConfigIfMissing() {
	_, err := os.DirFS(confDir).Open("config.json")
	// write config file if it does not exist
	if err != nil {
		content, err := fs.ReadFile(config, confName)
		if err != nil {
			cfg.log.Fatalf("Could not read embedded config file: %v", err)
		}

		derr := os.Mkdir(confDir, 0755)
		if derr != nil && derr.(*os.PathError).Err.Error() != "file exists" {
			cfg.log.Fatalf("Could not create config directory: %v", derr)
		}

		ferr := os.WriteFile(confFile, content, 0664)
		if ferr != nil && ferr.(*os.PathError).Err.Error() != "file exists" {
			cfg.log.Fatalf("Could not write config file: %v", ferr)
		}
	}
}

func (cfg *Config) rereadConfigOnFileChange() {
	watcher, err := fsnotify.NewWatcher()
	cfg.watcher = watcher
	if err != nil {
		cfg.log.Fatalf("Could not create file watcher: %v", err)
	}

	err = watcher.Add(confDir)
	if err != nil {
		cfg.log.Fatalf("Could not watch config file: %v", err)
	}

	for {
		select {
		case event := <-watcher.Events:
			if event.Has(fsnotify.Write) {
				cfg.readConfigIntoMemory()
			}
		case err := <-watcher.Errors:
			panic(err)
		}
	}
}

func (cfg *Config) Cleanup() {
	if cfg.watcher != nil {
		cfg.watcher.Close()
	}
}

func (cfg *Config) readConfigIntoMemory() {
	configContent, err := os.ReadFile(confFile)
	if err != nil {
		cfg.log.Fatalf("Could not read config file into memory: %v", err)
	}
	json.Unmarshal(configContent, cfg.EditorConfig)
}

// NormalizeForOutline applies Unicode NFC normalization to text before
// it reaches outline.FromText, so that rope offsets are stable regardless
// of whether the source (clipboard, disk file, different OS) stored
// accented characters in composed or decomposed form.
func NormalizeForOutline(s string) string {
	return norm.NFC.String(s)
}
