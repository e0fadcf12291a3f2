package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pthm/turbo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// config is the resolved configuration shared by all commands.
type config struct {
	Addr      string `mapstructure:"addr"`
	Key       string `mapstructure:"key"`
	Sensitive bool   `mapstructure:"sensitive"`
	LogLevel  string `mapstructure:"log-level"`
	LogFormat string `mapstructure:"log-format"`
}

// app carries the viper instance and logger through the command tree.
type app struct {
	v   *viper.Viper
	cfg config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logrus.StandardLogger()}
	var cfgFile string

	root := &cobra.Command{
		Use:   "turbo",
		Short: "Render and serve Turbo Stream fragments",
		Long: `turbo builds <turbo-stream> elements from the command line, packs them
into signed or encrypted tokens for deferred delivery, and runs a small demo
server that answers Turbo form submissions with streams.

Examples:
  turbo render replace --target message_1 --content "<p>Updated</p>"
  turbo render set_title --attr title="Inbox (3)"
  turbo encode reload --url /_s
  turbo serve --addr :8080`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(cfgFile); err != nil {
				return err
			}
			return a.setupLogging(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .turbo.yml, can also use TURBO_CONFIG_FILE env var)")
	root.PersistentFlags().StringP("log-level", "l", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-format", "text", "log format (text, json)")
	root.PersistentFlags().String("key", "", "key for deferred stream tokens")
	root.PersistentFlags().Bool("sensitive", false, "encrypt deferred stream tokens instead of signing them")
	for _, name := range []string{"log-level", "log-format", "key", "sensitive"} {
		_ = a.v.BindPFlag(name, root.PersistentFlags().Lookup(name))
	}

	root.AddCommand(
		newRenderCmd(a),
		newEncodeCmd(a),
		newDecodeCmd(a),
		newServeCmd(a),
		newVersionCmd(),
	)
	return root
}

// loadConfig resolves configuration with flags over environment over file.
func (a *app) loadConfig(cfgFile string) error {
	v := a.v
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if envConfigFile := os.Getenv("TURBO_CONFIG_FILE"); envConfigFile != "" {
		v.SetConfigFile(envConfigFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName(".turbo")
	}

	v.SetEnvPrefix("TURBO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	v.SetDefault("addr", ":8080")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || cfgFile != "" {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return nil
}

func (a *app) setupLogging(out io.Writer) error {
	level, err := logrus.ParseLevel(a.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.cfg.LogLevel, err)
	}
	a.log.SetLevel(level)

	switch a.cfg.LogFormat {
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	case "text", "":
		a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("unsupported log format: %s (supported: text, json)", a.cfg.LogFormat)
	}
	a.log.SetOutput(out)

	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("using config file")
	}
	return nil
}

// encoder builds the token encoder from the configured key.
func (a *app) encoder() (*turbo.Encoder, error) {
	if a.cfg.Key == "" {
		return nil, errors.New("no key configured (set --key or TURBO_KEY)")
	}
	return turbo.NewEncoder([]byte(a.cfg.Key))
}
