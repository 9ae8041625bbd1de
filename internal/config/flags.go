package config

import (
	"github.com/spf13/pflag"
)

// ParseFlags overrides env with the command-line flags that were set.
// pflag.ErrHelp is returned as-is when -h or --help is given.
func ParseFlags(env Env, args []string) (Env, *pflag.FlagSet, error) {
	fs := pflag.NewFlagSet("chauffeur-admin", pflag.ContinueOnError)
	fs.StringVar(&env.AppAddr, "addr", env.AppAddr, "listen address (APP_ADDR)")
	fs.StringVar(&env.GinMode, "gin-mode", env.GinMode, "gin mode: debug, release or test (GIN_MODE)")
	fs.StringVar(&env.IDScheme, "id-scheme", env.IDScheme, "identifier scheme: sequence, length or uuid (ID_SCHEME)")
	fs.StringVar(&env.NotifyPolicy, "notify-policy", env.NotifyPolicy, "notify on-match or always (NOTIFY_POLICY)")
	fs.IntVar(&env.NotifyBuffer, "notify-buffer", env.NotifyBuffer, "notifications kept for /api/notifications (NOTIFY_BUFFER)")
	fs.StringSliceVar(&env.CORSOrigins, "cors-origin", env.CORSOrigins, "allowed CORS origin, repeatable (CORS_ALLOWED_ORIGINS)")

	if err := fs.Parse(args); err != nil {
		return env, fs, err
	}
	if env.NotifyBuffer <= 0 {
		env.NotifyBuffer = defaultNotifyBuffer
	}
	return env, fs, nil
}
