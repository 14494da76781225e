// FILE: lixenwraith/dotenv/example/main.go
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/dotenv"
)

// LogLevel shows a custom type resolved through the registry
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
)

// AppConfig is the flat configuration of the example service
type AppConfig struct {
	APIKey      string        `env:"API_KEY" comment:"API key issued by the provider"`
	Host        string        `env:"HOST" default:"localhost"`
	Port        int           `env:"PORT" default:"8080"`
	Debug       bool          `env:"DEBUG" default:"false"`
	Ratio       float64       `env:"SAMPLE_RATIO" default:"0.25"`
	Timeout     time.Duration `env:"TIMEOUT" default:"30s" comment:"request timeout"`
	AllowedIPs  []string      `env:"ALLOWED_IPS" comment:"comma separated"`
	Level       LogLevel      `env:"LOG_LEVEL" default:"info"`
	BuildCommit string        `env:"BUILD_COMMIT,skip" comment:"stamped at build time"`
}

func main() {
	dir, err := os.MkdirTemp("", "dotenv-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	// PART 1: generate a template from the struct and write it
	template, err := dotenv.Generate(AppConfig{})
	if err != nil {
		log.Fatalf("template generation failed: %v", err)
	}
	templatePath := filepath.Join(dir, ".env.example")
	if err := dotenv.WriteFile(templatePath, []byte(template)); err != nil {
		log.Fatalf("failed to write template: %v", err)
	}
	fmt.Printf("--- %s ---\n%s\n", templatePath, template)

	// PART 2: write a filled-in env file and load it
	envPath := filepath.Join(dir, ".env")
	content := strings.Join([]string{
		"# example settings",
		"API_KEY=sk-123=abc",
		"PORT=9090",
		"DEBUG=TRUE",
		"TIMEOUT=2m30s",
		"ALLOWED_IPS=10.0.0.1,10.0.0.2",
		"LOG_LEVEL=warn",
		"BUILD_COMMIT=ignored",
	}, "\n")
	if err := os.WriteFile(envPath, []byte(content), 0644); err != nil {
		log.Fatal(err)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(zerolog.DebugLevel)
	store, err := dotenv.NewBuilder().
		WithFile(envPath).
		WithEnvFallback(true).
		WithLogger(logger).
		Build()
	if err != nil {
		log.Printf("env file unreadable, continuing with environment only: %v", err)
	}

	// PART 3: bind into the struct with a custom coercion
	registry := dotenv.DefaultRegistry()
	if err := dotenv.RegisterFunc(registry, parseLogLevel); err != nil {
		log.Fatal(err)
	}

	cfg := AppConfig{BuildCommit: "abc1234"}
	binder := dotenv.NewBinder(dotenv.WithRegistry(registry), dotenv.WithBinderLogger(logger))
	if err := binder.Bind(store, &cfg); err != nil {
		log.Fatalf("binding failed: %v", err)
	}

	fmt.Printf("API key:     %s\n", cfg.APIKey)
	fmt.Printf("Host:        %q (unset, default not applied)\n", cfg.Host)
	fmt.Printf("Port:        %d\n", cfg.Port)
	fmt.Printf("Debug:       %v\n", cfg.Debug)
	fmt.Printf("Timeout:     %s\n", cfg.Timeout)
	fmt.Printf("Allowed IPs: %v\n", cfg.AllowedIPs)
	fmt.Printf("Log level:   %d\n", cfg.Level)
	fmt.Printf("Commit:      %s (skipped)\n", cfg.BuildCommit)

	// PART 4: export what was read
	data, err := store.Export(dotenv.FormatTOML)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("--- as TOML ---\n%s", data)
}

func parseLogLevel(raw string, _ map[string]string) (LogLevel, error) {
	switch strings.ToLower(raw) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", raw)
	}
}
