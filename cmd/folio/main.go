package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	_ "github.com/joho/godotenv/autoload"
	"github.com/leighmacdonald/folio/internal/config"
	"github.com/leighmacdonald/folio/internal/profile"
	"github.com/leighmacdonald/folio/internal/ui"
	"github.com/spf13/cobra"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	profilePath    string
	rootCmd        = &cobra.Command{
		Use:   "folio",
		Short: "Terminal profile page",
		Long:  `folio - A personal profile page for your terminal, one section at a time`,
		Args:  cobra.NoArgs,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about folio",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a config file populated with the default values",
		Args:  cobra.NoArgs,
		RunE:  configInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		Run:   configPath,
	}
)

var errApp = errors.New("application error")

func main() {
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Profile document path, overrides profile_path")
	configCmd.AddCommand(configInitCmd, configPathCmd)
	rootCmd.AddCommand(versionCmd, configCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("folio - Terminal profile page\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)     //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)      //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)        //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion) //nolint:forbidigo
}

func configPath(cmd *cobra.Command, _ []string) {
	cmd.Println(config.Path(config.DefaultConfigName + ".yaml"))
}

func configInit(cmd *cobra.Command, _ []string) error {
	target := config.Path(config.DefaultConfigName + ".yaml")
	if _, err := os.Stat(target); err == nil {
		return errors.Join(fmt.Errorf("config already exists: %s", target), errApp)
	}

	loader := config.NewLoader(nil, path.Dir(target))
	conf, errRead := loader.Read()
	if errRead != nil {
		return errors.Join(errRead, errApp)
	}

	if err := loader.Write(conf, target); err != nil {
		return errors.Join(err, errApp)
	}

	cmd.Println("Wrote", target)

	return nil
}

// run is the main entry point of folio.
func run(cmd *cobra.Command, _ []string) error {
	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)
	configLoader := config.NewLoader(configUpdates)
	userConfig, errConfig := configLoader.Read()
	if errConfig != nil {
		return errors.Join(errApp, errConfig)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, config.ParseLevel(userConfig.LogLevel))
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting folio", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	if profilePath != "" {
		userConfig.ProfilePath = profilePath
	}

	prof, errProfile := profile.Load(userConfig.ProfilePath)
	if errProfile != nil {
		return errors.Join(errProfile, errApp)
	}

	program, errUI := ui.New(cmd.Context(), userConfig, prof, ui.BuildInfo{
		Version:    BuildVersion,
		Date:       BuildDate,
		Commit:     BuildCommit,
		ConfigPath: configLoader.Path(),
	})
	if errUI != nil {
		return errors.Join(errUI, errApp)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	configLoader.Watch(ctx)

	return NewApp(program, configUpdates).Start(ctx)
}
