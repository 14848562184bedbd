package config

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"vo-scaffolding/internal/apperr"
)

// DefaultFileName is looked up in the working directory when no path is given.
const DefaultFileName = "re-engineer.xml"

// Environment variables that take precedence over the configuration file.
const (
	EnvURL      = "VOGEN_DB_URL"
	EnvUserName = "VOGEN_DB_USERNAME"
	EnvPassword = "VOGEN_DB_PASSWORD"
)

type Config struct {
	XMLName          xml.Name `xml:"configuration" yaml:"-"`
	Driver           string   `xml:"driver" yaml:"driver"`
	URL              string   `xml:"url" yaml:"url"`
	UserName         string   `xml:"userName" yaml:"userName"`
	Password         string   `xml:"password" yaml:"password"`
	TableNamePattern string   `xml:"tableNamePattern" yaml:"tableNamePattern"`
	PackageName      string   `xml:"packageName" yaml:"packageName"`
	Prefix           string   `xml:"prefix" yaml:"prefix"`
	Suffix           string   `xml:"suffix" yaml:"suffix"`
	PackagePath      string   `xml:"packagePath" yaml:"packagePath"`

	// OutputDir is where generated files go, resolved by Load.
	OutputDir string `xml:"-" yaml:"-"`
}

// Connection returns the parameters needed to open the database.
func (c *Config) Connection() Connection {
	return Connection{
		Driver:   c.Driver,
		URL:      c.URL,
		UserName: c.UserName,
		Password: c.Password,
	}
}

// Connection holds the database connection parameters.
type Connection struct {
	Driver   string
	URL      string
	UserName string
	Password string
}

// LoadConfig reads the configuration at configPath. The decoder is chosen by
// extension: .xml, .yaml/.yml, anything else is read as a dotenv file.
func LoadConfig(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultFileName
	}

	if _, err := os.Stat(configPath); err != nil {
		return nil, apperr.Config(fmt.Sprintf("configuration file %s not found", configPath), err)
	}

	var (
		config *Config
		err    error
	)
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".xml":
		config, err = loadXML(configPath)
	case ".yaml", ".yml":
		config, err = loadYAML(configPath)
	default:
		config, err = loadEnv(configPath)
	}
	if err != nil {
		return nil, apperr.Config(fmt.Sprintf("error loading config file %s", configPath), err)
	}

	applyEnv(config)

	if err := config.resolve(); err != nil {
		return nil, apperr.Config(fmt.Sprintf("invalid config file %s", configPath), err)
	}

	return config, nil
}

func loadXML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := xml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadEnv(path string) (*Config, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, err
	}

	get := func(key string) string {
		return values[key]
	}

	return &Config{
		Driver:           get("DB_DRIVER"),
		URL:              get("DB_URL"),
		UserName:         get("DB_USERNAME"),
		Password:         get("DB_PASSWORD"),
		TableNamePattern: get("TABLE_NAME_PATTERN"),
		PackageName:      get("PACKAGE_NAME"),
		Prefix:           get("CLASS_PREFIX"),
		Suffix:           get("CLASS_SUFFIX"),
		PackagePath:      get("PACKAGE_PATH"),
	}, nil
}

func applyEnv(config *Config) {
	config.URL = getEnv(EnvURL, config.URL)
	config.UserName = getEnv(EnvUserName, config.UserName)
	config.Password = getEnv(EnvPassword, config.Password)
}

func (c *Config) resolve() error {
	c.Driver = strings.TrimSpace(c.Driver)
	c.URL = strings.TrimSpace(c.URL)
	c.TableNamePattern = strings.TrimSpace(c.TableNamePattern)
	c.PackageName = strings.TrimSpace(c.PackageName)
	c.PackagePath = strings.TrimSpace(c.PackagePath)

	var missing []string
	if c.Driver == "" {
		missing = append(missing, "driver")
	}
	if c.URL == "" {
		missing = append(missing, "url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	base := c.PackagePath
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		base = wd
	}
	c.OutputDir = filepath.Join(base, PackageDir(c.PackageName))

	return nil
}

// PackageDir translates a dotted package name into a relative path.
func PackageDir(packageName string) string {
	if packageName == "" {
		return ""
	}
	return filepath.Join(strings.Split(packageName, ".")...)
}

// Pattern returns the LIKE pattern for table names, "%" when unset.
func (c *Config) Pattern() string {
	if c.TableNamePattern == "" {
		return "%"
	}
	return c.TableNamePattern
}

// IsNotFound reports whether err was caused by a missing configuration file.
func IsNotFound(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
