package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	VK      VK      `yaml:"vk"`
	Parse   Parse   `yaml:"parse"`
	Members Members `yaml:"members"`
	Log     Log     `yaml:"log"`
}

// VK holds VK API configuration
type VK struct {
	BaseURL     string        `yaml:"base_url" env:"VK_BASE_URL" env-default:"https://api.vk.com/method"`
	APIVersion  string        `yaml:"api_version" env:"VK_API_VERSION" env-default:"5.126"`
	AccessToken string        `yaml:"access_token" env:"VK_ACCESS_TOKEN" env-required:"true"`
	Timeout     time.Duration `yaml:"timeout" env:"VK_TIMEOUT" env-default:"30s"`

	// Pause between group member pages, the API rate limit is undocumented
	MemberPageDelay time.Duration `yaml:"member_page_delay" env:"VK_MEMBER_PAGE_DELAY" env-default:"1s"`
}

// Parse holds settings of the monthly wall report
type Parse struct {
	Accounts []string `yaml:"accounts" env:"VK_ACCOUNTS" env-separator:","`

	// Date selects the month to report on and the day used for the post rate.
	// Empty means today.
	Date     string `yaml:"date" env:"VK_PARSING_DATE"`
	Timezone string `yaml:"timezone" env:"VK_TIMEZONE" env-default:"Local"`
}

// Members holds the group membership check settings
type Members struct {
	Groups []int64 `yaml:"groups" env:"VK_MEMBER_GROUPS" env-separator:","`
	Users  []int64 `yaml:"users" env:"VK_WATCHED_USERS" env-separator:","`
}

// Log holds logger settings
type Log struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

const dateLayout = "2006-01-02"

// Location resolves the configured timezone
func (p Parse) Location() (*time.Location, error) {
	if p.Timezone == "" || p.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading timezone %q: %w", p.Timezone, err)
	}
	return loc, nil
}

// ParsingDate returns the configured parsing date, or now when none is set
func (p Parse) ParsingDate(now time.Time) (time.Time, error) {
	loc, err := p.Location()
	if err != nil {
		return time.Time{}, err
	}
	if p.Date == "" {
		return now.In(loc), nil
	}
	t, err := time.ParseInLocation(dateLayout, p.Date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", p.Date, err)
	}
	return t, nil
}

// MustLoad loads configuration and exits on error.
// A YAML file is read when CONFIG_PATH is set, environment otherwise.
func MustLoad() Config {
	// Load .env file if exists (for development)
	_ = godotenv.Load()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		cfg, err := LoadFromFile(path)
		if err != nil {
			log.Fatalf("failed to load config from %s: %v", path, err)
		}
		return cfg
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	return cfg
}

// LoadFromFile loads configuration from a YAML file, environment overrides it
func LoadFromFile(path string) (Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
