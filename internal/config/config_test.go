package config

import (
	"errors"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "GIN_MODE", "CORS_ALLOWED_ORIGINS", "ID_SCHEME", "NOTIFY_POLICY", "NOTIFY_BUFFER"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()
	if env.AppAddr != ":8080" || env.NotifyBuffer != 50 || env.CORSOrigins != nil {
		t.Fatalf("unexpected defaults: %+v", env)
	}
}

func TestLoadEnvReadsVariables(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("ID_SCHEME", "uuid")
	t.Setenv("NOTIFY_POLICY", "always")
	t.Setenv("NOTIFY_BUFFER", "nope")

	env := LoadEnv()
	if env.AppAddr != ":9090" || env.IDScheme != "uuid" || env.NotifyPolicy != "always" {
		t.Fatalf("unexpected env: %+v", env)
	}
	if !reflect.DeepEqual(env.CORSOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Fatalf("unexpected origins: %v", env.CORSOrigins)
	}
	if env.NotifyBuffer != 50 {
		t.Fatalf("invalid NOTIFY_BUFFER should keep default, got %d", env.NotifyBuffer)
	}
}

func TestParseFlagsOverridesEnv(t *testing.T) {
	base := Env{AppAddr: ":8080", IDScheme: "sequence", NotifyBuffer: 50}

	env, _, err := ParseFlags(base, []string{"--addr", ":7000", "--notify-policy=always", "--cors-origin", "http://x.test"})
	if err != nil {
		t.Fatalf("ParseFlags returned error: %v", err)
	}
	if env.AppAddr != ":7000" || env.NotifyPolicy != "always" || env.IDScheme != "sequence" {
		t.Fatalf("unexpected env: %+v", env)
	}
	if !reflect.DeepEqual(env.CORSOrigins, []string{"http://x.test"}) {
		t.Fatalf("unexpected origins: %v", env.CORSOrigins)
	}
}

func TestParseFlagsHelp(t *testing.T) {
	_, fs, err := ParseFlags(Env{}, []string{"--help"})
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("expected ErrHelp, got %v", err)
	}
	if fs.Lookup("id-scheme") == nil {
		t.Fatalf("id-scheme flag not registered")
	}
}
