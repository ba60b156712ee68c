package ntpts

import (
	"io"
	"os"
	"strconv"
	"time"

	"github.com/juju/errors"
	yaml "gopkg.in/yaml.v2"
)

const envPrefix = "NTPTS_"

type Config struct {
	// POSIX locale name, defaults to LC_ALL, LC_TIME or LANG
	Locale string `yaml:"locale"`
	// IANA zone for the localtime line, empty for the process zone
	Zone  string `yaml:"zone"`
	Trace bool   `yaml:"trace"`

	// NTP server used instead of the system clock
	Server  string        `yaml:"server"`
	Timeout time.Duration `yaml:"timeout"`

	// node_exporter textfile collector output
	Textfile string `yaml:"textfile"`
}

func InitConfig(c *Config) {
	c.Trace = debug
	c.Timeout = defaultTimeout
}

func NewConfigFromFile(filename string) (c *Config, err error) {
	c = &Config{}
	InitConfig(c)
	err = ReadConfigFile(filename, c)
	return c, errors.Trace(err)
}

func ReadConfigFile(filename string, c *Config) (err error) {
	f, err := os.Open(filename)
	if err != nil {
		return errors.Annotatef(err, "read config file: %s", filename)
	}
	defer f.Close()

	err = ReadConfigYAML(f, c)
	return errors.Annotatef(err, "read yaml config: %s", filename)
}

func ReadConfigYAML(reader io.Reader, c *Config) error {
	decoder := yaml.NewDecoder(reader)
	if err := decoder.Decode(c); err != nil && err != io.EOF {
		return errors.Annotatef(err, "decode yaml")
	}
	return nil
}

// ReadConfig builds the run configuration from the file named by
// NTPTS_CONFIG (if any), NTPTS_* overrides and the locale environment.
func ReadConfig(lookup func(string) (string, bool)) (c *Config, err error) {
	c = &Config{}
	InitConfig(c)

	if filename, ok := lookup(envPrefix + "CONFIG"); ok && filename != "" {
		err = ReadConfigFile(filename, c)
		if err != nil {
			return nil, errors.Trace(err)
		}
	}

	err = ReadConfigFromEnv(lookup, envPrefix, c)
	if err != nil {
		return nil, errors.Trace(err)
	}

	if c.Locale == "" {
		c.Locale = LocaleFromEnv(lookup)
	}
	return c, nil
}

func ReadConfigFromEnv(lookup func(string) (string, bool), prefix string, c *Config) error {
	setString(lookup, &c.Locale, prefix+"LOCALE")
	setString(lookup, &c.Zone, prefix+"ZONE")
	setString(lookup, &c.Server, prefix+"SERVER")
	setString(lookup, &c.Textfile, prefix+"TEXTFILE")

	if v, ok := lookup(prefix + "TRACE"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Annotatef(err, "%sTRACE", prefix)
		}
		c.Trace = b
	}

	if v, ok := lookup(prefix + "TIMEOUT"); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return errors.Annotatef(err, "%sTIMEOUT", prefix)
		}
		c.Timeout = d
	}
	return nil
}

func setString(lookup func(string) (string, bool), dest *string, name string) {
	if v, ok := lookup(name); ok {
		*dest = v
	}
}
