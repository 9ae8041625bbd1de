package config

import (
	"os"
	"strconv"
	"strings"
)

const defaultNotifyBuffer = 50

type Env struct {
	AppAddr      string
	GinMode      string
	CORSOrigins  []string
	IDScheme     string
	NotifyPolicy string
	NotifyBuffer int
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))

	buffer := defaultNotifyBuffer
	if raw := strings.TrimSpace(os.Getenv("NOTIFY_BUFFER")); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			buffer = n
		}
	}

	return Env{
		AppAddr:      appAddr,
		GinMode:      ginMode,
		CORSOrigins:  splitOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
		IDScheme:     strings.TrimSpace(os.Getenv("ID_SCHEME")),
		NotifyPolicy: strings.TrimSpace(os.Getenv("NOTIFY_POLICY")),
		NotifyBuffer: buffer,
	}
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
