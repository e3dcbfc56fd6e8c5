package mcdb

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/df-mc/goleveldb/leveldb"
	"github.com/df-mc/goleveldb/leveldb/opt"
	"github.com/pelletier/go-toml"
	"github.com/sirupsen/logrus"
)

// Config holds the settings a DB is opened with. The zero Config opens a
// writable database with raw-zlib block compression and a nil Log
// (defaulting to logrus' standard logger).
type Config struct {
	// Log receives warnings about malformed keys encountered during
	// iteration, and debug lines about database open/close.
	Log *logrus.Logger
	// ReadOnly opens the underlying leveldb engine in read-only mode,
	// rejecting any Put or Delete.
	ReadOnly bool
}

// tomlConfig is the on-disk shape of a Config, loaded via LoadConfig. It is
// kept separate from Config itself because *logrus.Logger has no sensible
// TOML representation.
type tomlConfig struct {
	ReadOnly bool   `toml:"read_only"`
	LogLevel string `toml:"log_level"`
}

// LoadConfig reads a Config from a TOML file at path, the way an embedding
// server typically keeps its own config right next to the world store's.
// A log level of "" defaults to logrus' default level. If path does not
// exist, LoadConfig returns the zero Config and a nil error.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("mcdb: read config %s: %w", path, err)
	}
	var t tomlConfig
	if err := toml.Unmarshal(data, &t); err != nil {
		return Config{}, fmt.Errorf("mcdb: parse config %s: %w", path, err)
	}

	log := logrus.New()
	if t.LogLevel != "" {
		level, err := logrus.ParseLevel(t.LogLevel)
		if err != nil {
			return Config{}, fmt.Errorf("mcdb: parse config %s: invalid log_level %q: %w", path, t.LogLevel, err)
		}
		log.SetLevel(level)
	}
	return Config{Log: log, ReadOnly: t.ReadOnly}, nil
}

func (conf Config) log() *logrus.Logger {
	if conf.Log != nil {
		return conf.Log
	}
	return logrus.StandardLogger()
}

// Open opens (creating if necessary) the leveldb database rooted at dir,
// using raw-zlib block compression as the on-disk format requires.
func (conf Config) Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("mcdb: create world directory: %w", err)
	}
	ldb, err := leveldb.OpenFile(filepath.Join(dir, "db"), &opt.Options{
		Compression: opt.ZlibRawCompression,
		ReadOnly:    conf.ReadOnly,
	})
	if err != nil {
		return nil, fmt.Errorf("mcdb: open leveldb: %w", err)
	}
	conf.log().Debugf("mcdb: opened world at %s", dir)
	return &DB{conf: conf, ldb: ldb, dir: dir}, nil
}

// Open opens the database at dir using default settings: writable, raw-zlib
// block compression, logging to logrus' standard logger.
func Open(dir string) (*DB, error) {
	var conf Config
	return conf.Open(dir)
}
