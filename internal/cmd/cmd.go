package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/acpilot/acpilot/internal/app"
	"github.com/acpilot/acpilot/internal/cmd/rules"
	"github.com/clambin/go-common/charmer"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "acpilot",
		Short: "Rule-based air conditioning controller",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			charmer.SetJSONLogger(cmd, viper.GetBool("debug"))
		},
		RunE: run,
	}
)

var args = charmer.Arguments{
	"debug":                  {Default: false, Help: "Log debug messages"},
	"controller.interval":    {Default: 10 * time.Second, Help: "Time between control cycles"},
	"controller.lockTimeout": {Default: time.Second, Help: "Maximum time a cycle waits for the rules"},
	"controller.force":       {Default: false, Help: "Transmit the target configuration on every cycle"},
	"time.location":          {Default: "Local", Help: "Timezone used to determine the hour of day"},
	"api.addr":               {Default: ":8080", Help: "Address of the HTTP API"},
	"exporter.addr":          {Default: ":9090", Help: "Address of Prometheus exporter"},
	"health.maxAge":          {Default: time.Minute, Help: "Age after which the last cycle is considered stale"},
	"store.backend":          {Default: "file", Help: "Rule store backend (file|redis)"},
	"store.path":             {Default: "/var/lib/acpilot/rules.json", Help: "Rule document path (file backend)"},
	"store.redis.addr":       {Default: "localhost:6379", Help: "Redis address (redis backend)"},
	"store.redis.key":        {Default: "acpilot:rules", Help: "Redis key (redis backend)"},
	"sensor.type":            {Default: "tado", Help: "Temperature sensor (tado|mqtt|file)"},
	"sensor.topic":           {Default: "", Help: "MQTT topic publishing the room temperature"},
	"sensor.maxAge":          {Default: 5 * time.Minute, Help: "Age after which an MQTT reading is stale"},
	"sensor.path":            {Default: "", Help: "File holding the room temperature"},
	"sensor.scale":           {Default: 1.0, Help: "Scale applied to the file sensor's value"},
	"transport.type":         {Default: "log", Help: "AC command transport (tado|mqtt|ircodes|log)"},
	"transport.topic":        {Default: "", Help: "MQTT topic for AC commands"},
	"transport.retained":     {Default: false, Help: "Publish AC state as a retained message"},
	"transport.repeat":       {Default: 1, Help: "Number of times each AC state is sent"},
	"transport.repeatGap":    {Default: 500 * time.Millisecond, Help: "Time between repeated AC states"},
	"transport.codes":        {Default: "", Help: "YAML file with learned IR codes"},
	"transport.gap":          {Default: 300 * time.Millisecond, Help: "Time between IR button presses"},
	"mqtt.broker":            {Default: "tcp://localhost:1883", Help: "MQTT broker"},
	"mqtt.clientID":          {Default: "acpilot", Help: "MQTT client ID"},
	"telemetry.topic":        {Default: "", Help: "MQTT topic receiving a report of each control cycle"},
	"tado.username":          {Default: "", Help: "Tadoº username"},
	"tado.password":          {Default: "", Help: "Tadoº password"},
	"tado.clientSecret":      {Default: "", Help: "Tadoº client secret"},
	"tado.zone":              {Default: "", Help: "Tadoº zone controlling the AC"},
	"slack.token":            {Default: "", Help: "Slack token"},
	"slack.bot":              {Default: false, Help: "Accept commands from Slack"},
}

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	if err := charmer.SetPersistentFlags(&RootCmd, viper.GetViper(), args); err != nil {
		panic("failed to set flags: " + err.Error())
	}
	RootCmd.AddCommand(&rules.Cmd)
}

func initConfig() {
	_ = godotenv.Load()

	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/acpilot/")
		viper.AddConfigPath("$HOME/.acpilot")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	if err := charmer.SetDefaults(viper.GetViper(), args); err != nil {
		panic("failed to set viper defaults: " + err.Error())
	}

	viper.SetEnvPrefix("ACPILOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFilename != "" || !errors.As(err, &notFound) {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger := slog.Default()
	logger.Info("acpilot starting", "version", cmd.Root().Version)
	defer logger.Info("acpilot stopped")

	a, err := app.New(ctx, viper.GetViper(), cmd.Root().Version, prometheus.DefaultRegisterer, logger)
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	return a.Run(ctx)
}
