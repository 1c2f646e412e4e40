package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/chalvinwz/sitemeta"
	"github.com/chalvinwz/sitemeta/logging"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	// Loaded before flag parsing so the file can also set SITEMETA_* flag defaults.
	envFile := sitemeta.EnvOr("SITEMETA_ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error: load %s: %v\n", envFile, err)
		os.Exit(1)
	}

	app := kingpin.New("sitemeta", "Site metadata for the personal website: load, check, export and serve it")
	app.HelpFlag.Short('h')
	logLevel := app.Flag("log-level", "Log level: debug, info, warn, error").Envar("SITEMETA_LOG_LEVEL").Default("info").String()

	initCmd := app.Command("init", "Create a site.yaml and .env.example in a new directory")
	initDir := initCmd.Arg("dir", "Directory to create").Required().String()

	exportCmd := app.Command("export", "Write the metadata as JSON, YAML or the siteMetadata.js module")
	exportConfig := exportCmd.Flag("config", "Path to a YAML or JSON metadata file").Short('c').String()
	exportFormat := exportCmd.Flag("format", "Output format").Short('f').Default("json").Enum("json", "yaml", "yml", "js")
	exportOut := exportCmd.Flag("out", "Write to this file instead of stdout").Short('o').String()

	checkCmd := app.Command("check", "Report problems with the metadata values")
	checkConfig := checkCmd.Flag("config", "Path to a YAML or JSON metadata file").Short('c').String()

	serveCmd := app.Command("serve", "Publish the metadata over HTTP")
	serveConfig := serveCmd.Flag("config", "Path to a YAML or JSON metadata file").Short('c').String()
	serveAddr := serveCmd.Flag("addr", "Listen address").Envar("SITEMETA_ADDR").Default(":3000").String()
	serveStatic := serveCmd.Flag("static", "Directory holding the /static assets").Default("public").String()
	serveStrict := serveCmd.Flag("strict", "Refuse to start when check reports problems").Bool()
	serveRPS := serveCmd.Flag("rate-limit-rps", "Requests per second per client (negative disables)").Default("20").Float64()
	serveBurst := serveCmd.Flag("rate-limit-burst", "Burst capacity per client").Default("40").Int()

	versionCmd := app.Command("version", "Print the sitemeta version")

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	var err error
	switch command {
	case initCmd.FullCommand():
		err = runInit(os.Stdout, *initDir)
	case exportCmd.FullCommand():
		err = runExport(os.Stdout, *exportConfig, *exportFormat, *exportOut)
	case checkCmd.FullCommand():
		err = runCheck(os.Stdout, *checkConfig)
	case serveCmd.FullCommand():
		err = runServe(*logLevel, *serveConfig, sitemeta.ServerConfig{
			Addr:           *serveAddr,
			StaticDir:      *serveStatic,
			Strict:         *serveStrict,
			RateLimitRPS:   *serveRPS,
			RateLimitBurst: *serveBurst,
		})
	case versionCmd.FullCommand():
		fmt.Printf("sitemeta %s\n", version)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(level, configPath string, cfg sitemeta.ServerConfig) error {
	logger, err := logging.New(level, "json")
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	meta, err := sitemeta.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := sitemeta.New(meta, cfg, logger)
	if err := app.Start(ctx); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return err
	}
	return nil
}
