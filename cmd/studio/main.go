// main.go
//
// Storefront Studio: a storefront app builder and its configuration persistence service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of storefront-studio.
// storefront-studio is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// storefront-studio is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with storefront-studio.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/localnerve/storefront-studio/internal/advice"
	"github.com/localnerve/storefront-studio/internal/config"
	"github.com/localnerve/storefront-studio/internal/logging"
	"github.com/localnerve/storefront-studio/internal/session"
	"github.com/localnerve/storefront-studio/internal/storefront"
	"github.com/localnerve/storefront-studio/internal/studio"
	"github.com/localnerve/storefront-studio/internal/tui"
	"go.uber.org/zap"
)

const usage = `
Build, preview and publish a storefront app configuration.

Usage:

studio [-f ENV_FILE_PATH] [-accessible] COMMAND [ARGS]

Commands:
  login                      sign in with email and password
  signup                     create an account
  logout                     forget the cached account
  edit                       open the interactive builder
  preview [-screen S] [-cart N]
                             paint the stored app on a screen (HOME, CATEGORIES, OFFERS, CART, ORDERS, PROFILE)
  build                      run the export and write <app>_config.json to STUDIO_EXPORT_DIR
  publish FILE               publish an exported configuration file
  advice [SECTION COMPONENT] ask the Smart Assistant (needs GENAI_API_KEY)

example
  studio -f .env preview -screen CART -cart 2
`

func main() {
	var showHelp, accessible bool
	var envFilename string
	flag.BoolVar(&showHelp, "h", false, "show help")
	flag.BoolVar(&accessible, "accessible", false, "use plain prompts for screen readers")
	flag.StringVar(&envFilename, "f", ".env", "path to the .env file")
	flag.Parse()

	if showHelp || flag.NArg() == 0 {
		fmt.Print(usage + "\n")
		return
	}

	if err := config.LoadEnvFile(envFilename); err != nil {
		log.Fatalf("Failed to load environment: %v", err)
	}
	cfg, err := config.LoadStudio()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// stdout belongs to the terminal UI
	logger, err := logging.NewWithOutput(cfg.LogLevel, "stderr")
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	sess, err := session.Open(cfg.SessionPath)
	if err != nil {
		logger.Fatal("failed to open session", zap.Error(err))
	}
	defer sess.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := studio.New(cfg, sess, newAdvisor(ctx, cfg, logger), logger, os.Stdout)
	s.Confirmer = tui.Confirmer{Accessible: accessible}

	if err := run(ctx, s, flag.Arg(0), flag.Args()[1:]); err != nil {
		if tui.Aborted(err) || errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, s.Styles.Error.Render(err.Error()))
		stop()
		os.Exit(1)
	}
}

func newAdvisor(ctx context.Context, cfg *config.StudioConfig, logger *zap.Logger) *advice.Advisor {
	if cfg.GenAIAPIKey == "" {
		return advice.New(nil, logger)
	}
	gen, err := advice.NewGeminiGenerator(ctx, cfg.GenAIAPIKey, cfg.GenAIModel)
	if err != nil {
		logger.Warn("smart assistant disabled", zap.Error(err))
		return advice.New(nil, logger)
	}
	return advice.New(gen, logger.Named("advice"))
}

func run(ctx context.Context, s *studio.Studio, cmd string, args []string) error {
	switch cmd {
	case "login":
		var email, password string
		if err := tui.LoginForm(&email, &password).Run(); err != nil {
			return err
		}
		_, err := s.Login(ctx, email, password)
		return err

	case "signup":
		var name, email, password string
		if err := tui.SignupForm(&name, &email, &password).Run(); err != nil {
			return err
		}
		_, err := s.Signup(ctx, name, email, password)
		return err

	case "logout":
		return s.Logout()

	case "edit":
		return s.Edit(ctx)

	case "preview":
		fs := flag.NewFlagSet("preview", flag.ExitOnError)
		screen := fs.String("screen", string(storefront.ScreenHome), "screen to paint")
		cart := fs.Int("cart", 0, "demo cart count")
		if err := fs.Parse(args); err != nil {
			return err
		}
		return s.Preview(ctx, storefront.Screen(strings.ToUpper(*screen)), *cart)

	case "build":
		_, err := s.Build(ctx)
		return err

	case "publish":
		if len(args) != 1 {
			return fmt.Errorf("publish needs the exported file path")
		}
		_, err := s.PublishFile(ctx, args[0])
		return err

	case "advice":
		section, component := "", ""
		if len(args) > 0 {
			section = args[0]
		}
		if len(args) > 1 {
			component = args[1]
		}
		_, err := s.Advice(ctx, section, component)
		return err
	}
	return fmt.Errorf("unknown command %q, run studio -h", cmd)
}
