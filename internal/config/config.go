package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string      `yaml:"env" env-default:"prod"`
	HTTPServer  HTTPServer  `yaml:"http_server"`
	StaticForms StaticForms `yaml:"static_forms"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	AllowedMethods   []string      `yaml:"allowed_methods" env-default:"*"`
	AllowedHeaders   []string      `yaml:"allowed_headers" env-default:"*"`
}

// StaticForms configures the third-party form relay receiving quote requests.
type StaticForms struct {
	Endpoint  string        `yaml:"endpoint" env-default:"https://api.staticforms.xyz/submit"`
	AccessKey string        `yaml:"access_key" env:"STATIC_FORMS_ACCESS_KEY" env-required:"true"`
	Subject   string        `yaml:"subject" env-default:"Nouvelle demande de devis"`
	Timeout   time.Duration `yaml:"timeout" env-default:"10s"`
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
