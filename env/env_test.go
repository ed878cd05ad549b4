package env

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
)

type testConfig struct {
	Name    string        `env:"ENVKIT_TEST_NAME"`
	Age     uint32        `env:"ENVKIT_TEST_AGE"`
	Debug   bool          `env:"ENVKIT_TEST_DEBUG,default:false"`
	Ratio   float64       `env:"ENVKIT_TEST_RATIO,optional"`
	Timeout time.Duration `env:"ENVKIT_TEST_TIMEOUT,default:30s"`
	Skip    string        `env:"-"`
	NoTag   string
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected testConfig
		wantErr  bool
	}{
		{
			name: "all fields set from environment",
			envVars: map[string]string{
				"ENVKIT_TEST_NAME":    "Brad",
				"ENVKIT_TEST_AGE":     "20",
				"ENVKIT_TEST_DEBUG":   "true",
				"ENVKIT_TEST_RATIO":   "0.5",
				"ENVKIT_TEST_TIMEOUT": "1m",
			},
			expected: testConfig{
				Name:    "Brad",
				Age:     20,
				Debug:   true,
				Ratio:   0.5,
				Timeout: time.Minute,
			},
		},
		{
			name: "defaults and optional zero values",
			envVars: map[string]string{
				"ENVKIT_TEST_NAME": "Brad",
				"ENVKIT_TEST_AGE":  "20",
			},
			expected: testConfig{
				Name:    "Brad",
				Age:     20,
				Debug:   false,
				Ratio:   0,
				Timeout: 30 * time.Second,
			},
		},
		{
			name: "required variable missing",
			envVars: map[string]string{
				"ENVKIT_TEST_AGE": "20",
			},
			wantErr: true,
		},
		{
			name: "unparseable uint",
			envVars: map[string]string{
				"ENVKIT_TEST_NAME": "Brad",
				"ENVKIT_TEST_AGE":  "notanumber",
			},
			wantErr: true,
		},
		{
			name: "unparseable bool",
			envVars: map[string]string{
				"ENVKIT_TEST_NAME":  "Brad",
				"ENVKIT_TEST_AGE":   "20",
				"ENVKIT_TEST_DEBUG": "potato",
			},
			wantErr: true,
		},
		{
			name: "negative value for unsigned field",
			envVars: map[string]string{
				"ENVKIT_TEST_NAME": "Brad",
				"ENVKIT_TEST_AGE":  "-1",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := testConfig{}
			err := Load(&cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && cfg != tt.expected {
				t.Errorf("Load() = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestLoadMissingVariable(t *testing.T) {
	cfg := struct {
		Value string `env:"ENVKIT_TEST_DEFINITELY_NOT_SET"`
	}{}

	err := Load(&cfg)
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Load() error = %v, want *MissingError", err)
	}
	if missing.Variable != "ENVKIT_TEST_DEFINITELY_NOT_SET" {
		t.Errorf("Variable = %q, want %q", missing.Variable, "ENVKIT_TEST_DEFINITELY_NOT_SET")
	}
}

func TestLoadParseError(t *testing.T) {
	t.Setenv("ENVKIT_TEST_PORT", "eighty")

	cfg := struct {
		Port int `env:"ENVKIT_TEST_PORT"`
	}{}

	err := Load(&cfg)
	var parse *ParseError
	if !errors.As(err, &parse) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if parse.Variable != "ENVKIT_TEST_PORT" {
		t.Errorf("Variable = %q, want %q", parse.Variable, "ENVKIT_TEST_PORT")
	}
	if parse.Value != "eighty" {
		t.Errorf("Value = %q, want %q", parse.Value, "eighty")
	}
	if parse.Type != "int" {
		t.Errorf("Type = %q, want %q", parse.Type, "int")
	}
}

func TestLoadEmptyValueIsPresent(t *testing.T) {
	t.Setenv("ENVKIT_TEST_EMPTY", "")

	strCfg := struct {
		Value string `env:"ENVKIT_TEST_EMPTY"`
	}{Value: "sentinel"}
	if err := Load(&strCfg); err != nil {
		t.Fatalf("Load() error = %v, want nil for empty string value", err)
	}
	if strCfg.Value != "" {
		t.Errorf("Value = %q, want empty string", strCfg.Value)
	}

	intCfg := struct {
		Value int `env:"ENVKIT_TEST_EMPTY"`
	}{}
	err := Load(&intCfg)
	var parse *ParseError
	if !errors.As(err, &parse) {
		t.Fatalf("Load() error = %v, want *ParseError for empty numeric value", err)
	}
	var missing *MissingError
	if errors.As(err, &missing) {
		t.Error("empty value must not be reported as missing")
	}
}

func TestLoadWithPrefix(t *testing.T) {
	t.Setenv("MYAPP_ENVKIT_TEST_HOST", "example.com")

	cfg := struct {
		Host string `env:"ENVKIT_TEST_HOST"`
	}{}
	if err := Load(&cfg, WithPrefix("MYAPP_")); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Host != "example.com" {
		t.Errorf("Host = %q, want %q", cfg.Host, "example.com")
	}

	// The prefixed name appears in errors too.
	missingCfg := struct {
		Other string `env:"ENVKIT_TEST_OTHER"`
	}{}
	err := Load(&missingCfg, WithPrefix("MYAPP_"))
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Fatalf("Load() error = %v, want *MissingError", err)
	}
	if missing.Variable != "MYAPP_ENVKIT_TEST_OTHER" {
		t.Errorf("Variable = %q, want %q", missing.Variable, "MYAPP_ENVKIT_TEST_OTHER")
	}
}

func TestLoadNestedStructs(t *testing.T) {
	t.Setenv("ENVKIT_TEST_DB_HOST", "localhost")
	t.Setenv("ENVKIT_TEST_DB_PORT", "5432")
	t.Setenv("ENVKIT_TEST_REDIS_ADDR", "localhost:6379")

	type redisConfig struct {
		Addr string `env:"ENVKIT_TEST_REDIS_ADDR"`
	}
	cfg := struct {
		Database struct {
			Host string `env:"ENVKIT_TEST_DB_HOST"`
			Port int    `env:"ENVKIT_TEST_DB_PORT"`
		}
		Redis *redisConfig
	}{}

	if err := Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != 5432 {
		t.Errorf("Database = %+v, want host localhost port 5432", cfg.Database)
	}
	if cfg.Redis == nil || cfg.Redis.Addr != "localhost:6379" {
		t.Errorf("Redis = %+v, want addr localhost:6379", cfg.Redis)
	}
}

func TestLoadCollectAll(t *testing.T) {
	t.Setenv("ENVKIT_TEST_BAD_INT", "nope")

	cfg := struct {
		A int    `env:"ENVKIT_TEST_BAD_INT"`
		B string `env:"ENVKIT_TEST_COLLECT_B"`
		C bool   `env:"ENVKIT_TEST_COLLECT_C"`
	}{}

	err := Load(&cfg, CollectAll())
	if err == nil {
		t.Fatal("Load() error = nil, want joined errors")
	}
	for _, want := range []string{"ENVKIT_TEST_BAD_INT", "ENVKIT_TEST_COLLECT_B", "ENVKIT_TEST_COLLECT_C"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
	var parse *ParseError
	if !errors.As(err, &parse) {
		t.Error("joined error does not expose *ParseError")
	}
	var missing *MissingError
	if !errors.As(err, &missing) {
		t.Error("joined error does not expose *MissingError")
	}
}

func TestLoadFailFastStopsAtFirstError(t *testing.T) {
	t.Setenv("ENVKIT_TEST_FIRST", "nope")
	t.Setenv("ENVKIT_TEST_SECOND", "also nope")

	cfg := struct {
		First  int `env:"ENVKIT_TEST_FIRST"`
		Second int `env:"ENVKIT_TEST_SECOND"`
	}{}

	err := Load(&cfg)
	var parse *ParseError
	if !errors.As(err, &parse) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if parse.Variable != "ENVKIT_TEST_FIRST" {
		t.Errorf("failed on %s, want declaration-order first failure ENVKIT_TEST_FIRST", parse.Variable)
	}
}

func TestLoadRejectsNonStructPointer(t *testing.T) {
	targets := []any{
		nil,
		42,
		"target",
		testConfig{},
		(*testConfig)(nil),
	}
	for _, target := range targets {
		if err := Load(target); !errors.Is(err, ErrNotStructPointer) {
			t.Errorf("Load(%T) error = %v, want ErrNotStructPointer", target, err)
		}
	}
}

func TestLoadZeroFields(t *testing.T) {
	cfg := struct{}{}
	if err := Load(&cfg); err != nil {
		t.Fatalf("Load() on zero-field struct = %v, want nil", err)
	}
}

func TestLoadIdempotent(t *testing.T) {
	t.Setenv("ENVKIT_TEST_NAME", "Brad")
	t.Setenv("ENVKIT_TEST_AGE", "20")

	var first, second testConfig
	if err := Load(&first); err != nil {
		t.Fatalf("first Load() error = %v", err)
	}
	if err := Load(&second); err != nil {
		t.Fatalf("second Load() error = %v", err)
	}
	if first != second {
		t.Errorf("repeated loads differ: %+v vs %+v", first, second)
	}
}

func TestLoadUnsupportedType(t *testing.T) {
	t.Setenv("ENVKIT_TEST_CHAN", "value")

	cfg := struct {
		Events chan int `env:"ENVKIT_TEST_CHAN"`
	}{}

	err := Load(&cfg)
	var unsupported *UnsupportedTypeError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Load() error = %v, want *UnsupportedTypeError", err)
	}
	if unsupported.Field != "Events" {
		t.Errorf("Field = %q, want %q", unsupported.Field, "Events")
	}
}

func TestLoadSlices(t *testing.T) {
	t.Setenv("ENVKIT_TEST_HOSTS", "a.example.com|b.example.com")
	t.Setenv("ENVKIT_TEST_PORTS", "80,443,8080")

	cfg := struct {
		Hosts []string `env:"ENVKIT_TEST_HOSTS,separator:|"`
		Ports []int    `env:"ENVKIT_TEST_PORTS"`
	}{}

	if err := Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !reflect.DeepEqual(cfg.Hosts, []string{"a.example.com", "b.example.com"}) {
		t.Errorf("Hosts = %v", cfg.Hosts)
	}
	if !reflect.DeepEqual(cfg.Ports, []int{80, 443, 8080}) {
		t.Errorf("Ports = %v", cfg.Ports)
	}
}

func TestLoadWithLogger(t *testing.T) {
	t.Setenv("ENVKIT_TEST_NAME", "Brad")
	t.Setenv("ENVKIT_TEST_AGE", "20")

	cfg := testConfig{}
	if err := Load(&cfg, WithLogger(zap.NewNop())); err != nil {
		t.Fatalf("Load() with logger error = %v", err)
	}
	if cfg.Name != "Brad" {
		t.Errorf("Name = %q, want %q", cfg.Name, "Brad")
	}
}

func TestMustLoadPanicsOnMissing(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustLoad did not panic for a missing variable")
		}
	}()

	cfg := struct {
		Value string `env:"ENVKIT_TEST_DEFINITELY_NOT_SET"`
	}{}
	MustLoad(&cfg)
}
