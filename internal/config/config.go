package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const envPrefix = "SUBSTORAGE_"

// Config of one batch run. Defaults are the built-in batch.
type Config struct {
	Endpoint  string   `yaml:"endpoint"`
	Output    string   `yaml:"output"`
	Pattern   string   `yaml:"pattern"`
	Extension string   `yaml:"extension"`
	FileIDs   []string `yaml:"file_ids"`
	Compress  bool     `yaml:"compress"`
}

func Default() Config {
	return Config{
		Endpoint:  "https://toto.dola",
		Output:    ".",
		Pattern:   "customPattern",
		Extension: "csv",
		FileIDs:   []string{"12345", "67890", "abcde"},
	}
}

// Load layers the YAML file at path (optional, skipped when empty) and then the
// SUBSTORAGE_* environment over the defaults. A .env file in the working
// directory is read first when present.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "Load .env failed")
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "Open config ["+path+"] failed")
	}
	defer f.Close()

	// an empty document means no overrides
	if err = yaml.NewDecoder(f).Decode(c); err != nil && err != io.EOF {
		return errors.Wrap(err, "Decode config ["+path+"] failed")
	}
	return nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(envPrefix + "ENDPOINT"); ok {
		c.Endpoint = v
	}
	if v, ok := lookup(envPrefix + "OUTPUT"); ok {
		c.Output = v
	}
	if v, ok := lookup(envPrefix + "PATTERN"); ok {
		c.Pattern = v
	}
	if v, ok := lookup(envPrefix + "EXTENSION"); ok {
		c.Extension = v
	}
	if v, ok := lookup(envPrefix + "FILE_IDS"); ok {
		c.FileIDs = SplitIDs(v)
	}
	if v, ok := lookup(envPrefix + "COMPRESS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Wrap(err, "invalid "+envPrefix+"COMPRESS")
		}
		c.Compress = b
	}
	return nil
}

// SplitIDs splits a comma or space separated list, dropping blanks.
func SplitIDs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}
