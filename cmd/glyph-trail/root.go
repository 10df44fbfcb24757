package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/glyph-trail/core"
	"github.com/lixenwraith/glyph-trail/host"
	"github.com/lixenwraith/glyph-trail/store"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "glyph-trail",
		Short:         "Cursor glyph trail over a terminal portfolio page.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveSettings(cmd)
			if err != nil {
				return err
			}
			return runInteractive(cmd, s)
		},
	}

	registerFlags(cmd.PersistentFlags())
	cmd.AddCommand(newSimulateCommand())
	cmd.AddCommand(newMotionCommand())
	return cmd
}

func resolveSettings(cmd *cobra.Command) (settings, error) {
	v, err := newViper(cmd.Root().PersistentFlags())
	if err != nil {
		return settings{}, err
	}
	return loadSettings(v)
}

func runInteractive(cmd *cobra.Command, s settings) error {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errors.New("interactive mode needs a terminal, try 'glyph-trail simulate'")
	}

	if logFile := setupLogging(s.Debug); logFile != nil {
		defer logFile.Close()
	}

	var opts []host.Option
	mode := core.MotionAuto
	prefs, err := store.Open(s.DataDir)
	if err != nil {
		log.Printf("preferences unavailable: %v", err)
	} else {
		if mode, err = prefs.MotionMode(); err != nil {
			log.Printf("motion preference: %v", err)
		}
		opts = append(opts, host.WithPreferences(prefs))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runHost(ctx, screen, s.hostConfig(mode), opts...)
}

// runHost keeps the screen registered for crash recovery until Run has unwound
func runHost(ctx context.Context, screen tcell.Screen, cfg host.Config, opts ...host.Option) error {
	core.RegisterCrashScreen(screen)
	defer core.RegisterCrashScreen(nil)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	return host.New(screen, cfg, opts...).Run(ctx)
}
