// paperchat TUI - a terminal client for chatting with your PDFs.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/paperchat/paperchat-tui/internal/api"
	"github.com/paperchat/paperchat-tui/internal/auth"
	"github.com/paperchat/paperchat-tui/internal/config"
	"github.com/paperchat/paperchat-tui/internal/session"
	"github.com/paperchat/paperchat-tui/internal/ui/chat"
	"github.com/paperchat/paperchat-tui/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
)

func main() {
	var (
		serverURL   = flag.String("server", "", "backend URL (overrides config)")
		promptLogin = flag.Bool("login", false, "prompt for credentials before starting")
		debugLog    = flag.String("debug", "", "write debug log to the given file")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("paperchat %s (%s)\n", Version, GitCommit)
		return
	}

	if *debugLog != "" {
		f, err := tea.LogToFile(*debugLog, "paperchat")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening debug log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *serverURL != "" {
		cfg.Server.URL = *serverURL
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	tokenPath, err := cfg.TokenPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.EnsureConfigDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config directory: %v\n", err)
	}

	store := session.New(tokenPath)
	if err := store.LoadToken(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read saved session: %v\n", err)
	}

	client := api.New(cfg.Server.URL, time.Duration(cfg.Server.RequestTimeoutSecs)*time.Second, store.Token)
	gateway := auth.NewGateway(client, store)

	if *promptLogin {
		if err := loginInteractive(gateway); err != nil {
			fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
			os.Exit(1)
		}
	}

	runTUI(cfg, client, gateway, store)
}

// loginInteractive prompts for credentials on the terminal before the TUI
// takes over the screen. The password is read without echo.
func loginInteractive(gateway *auth.Gateway) error {
	fmt.Print("Username: ")
	var username string
	if _, err := fmt.Scanln(&username); err != nil {
		return fmt.Errorf("could not read username: %w", err)
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return fmt.Errorf("could not read password: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	return gateway.Login(ctx, strings.TrimSpace(username), string(password))
}

// runTUI builds and runs the Bubble Tea program.
func runTUI(cfg *config.Config, client *api.Client, gateway *auth.Gateway, store *session.Store) {
	theme := styles.NewTheme(cfg.UI.Theme)
	runner := chat.NewStreamRunner(client)

	m := chat.New(theme, cfg.UI.MarkdownWidth, chat.Deps{
		Client:  client,
		Gateway: gateway,
		Session: store,
		Runner:  runner,
	})

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	runner.SetProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running paperchat: %v\n", err)
		os.Exit(1)
	}
}
