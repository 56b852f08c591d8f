package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Postgres struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`
}

func (p Postgres) ConnStr() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s", p.Host, p.User, p.Password, p.DBName, p.Port, p.SSLMode)
}

type Server struct {
	Port int    `mapstructure:"port"`
	Host string `mapstructure:"host"`
}

func (s *Server) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type Auth struct {
	// Secret used to verify tokens issued by the auth provider.
	JWTSecret string `mapstructure:"jwtSecret"`
}

type LLM struct {
	BaseURL   string `mapstructure:"baseUrl"`
	Token     string `mapstructure:"token"`
	Model     string `mapstructure:"model"`
	MaxTokens int    `mapstructure:"maxTokens"`
}

type Places struct {
	APIKey        string `mapstructure:"apiKey"`
	BaseURL       string `mapstructure:"baseUrl"`
	DefaultRadius int    `mapstructure:"defaultRadius"`
}

type Cors struct {
	Origins []string `mapstructure:"origins"`
}

type Config struct {
	Postgres Postgres `mapstructure:"postgres"`
	Server   Server   `mapstructure:"server"`
	Auth     Auth     `mapstructure:"auth"`
	LLM      LLM      `mapstructure:"llm"`
	Places   Places   `mapstructure:"places"`
	Cors     Cors     `mapstructure:"cors"`
}

func LoadConfig() *Config {
	viper.SetConfigFile("./config/config.yaml")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		log.Fatal(err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatal(err)
	}

	return &config
}
