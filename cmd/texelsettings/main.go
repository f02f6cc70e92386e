// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/texelsettings/main.go
// Summary: Command line front end for settings resolution and session launch.
// Usage: Run `texelsettings` to print the resolved default profile, -list to
// inspect the catalog, -launch to start and attach a session.

package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/framegrace/texelsettings/catalog"
	"github.com/framegrace/texelsettings/scheme"
	"github.com/framegrace/texelsettings/session"
	"github.com/framegrace/texelsettings/settings"
	"github.com/framegrace/texelsettings/termcolor"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fs := flag.NewFlagSet("texelsettings", flag.ContinueOnError)

	configPath := fs.String("config", "", "Settings file, JSON or TOML (default: user config dir)")
	profileSel := fs.String("profile", "", "Profile to resolve: GUID or name (default: the default profile)")
	command := fs.String("command", "", "Override the profile's command line")
	dir := fs.String("dir", "", "Override the starting directory")
	title := fs.String("title", "", "Override the starting title")

	listProfiles := fs.Bool("list", false, "List profiles and exit")
	listSchemes := fs.Bool("list-schemes", false, "List color schemes and exit")

	launch := fs.Bool("launch", false, "Launch the resolved session and attach this terminal to it")
	journalPath := fs.String("journal", "", "Launch journal database (default: user config dir)")
	history := fs.Int("history", 0, "Show the last N journaled launches and exit")
	importScheme := fs.String("import-scheme", "", "Convert an Alacritty YAML theme to settings JSON and exit")

	if err := fs.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if *importScheme != "" {
		return runImportScheme(*importScheme)
	}
	if *history > 0 {
		return runHistory(*journalPath, *history)
	}

	if *configPath == "" {
		p, err := catalog.Path()
		if err != nil {
			return fmt.Errorf("resolve settings path: %w", err)
		}
		*configPath = p
	}
	cat, err := catalog.LoadOrDefault(*configPath)
	if err != nil {
		return err
	}

	if *listProfiles {
		return runListProfiles(cat)
	}
	if *listSchemes {
		return runListSchemes(cat)
	}

	args := &settings.NewTerminalArgs{
		Commandline:       *command,
		StartingDirectory: *dir,
		TabTitle:          *title,
		Profile:           *profileSel,
	}
	id, es, err := settings.Build(cat, args)
	if err != nil {
		return err
	}

	if !*launch {
		printSettings(os.Stdout, id, es)
		return nil
	}
	return runLaunch(*journalPath, id, es)
}

// printSettings renders the resolved record as an aligned two-column table.
func printSettings(w io.Writer, id uuid.UUID, es *settings.EffectiveSettings) {
	type row struct{ key, value string }

	commandline := es.Commandline()
	if commandline == "" {
		commandline = "(login shell)"
	}
	palette := es.ColorTable()
	hexRow := func(from, to int) string {
		parts := make([]string, 0, to-from)
		for i := from; i < to; i++ {
			parts = append(parts, palette[i].Hex())
		}
		return strings.Join(parts, " ")
	}

	rows := []row{
		{"Profile", fmt.Sprintf("%s (%s)", es.ProfileName(), id)},
		{"Starting title", es.StartingTitle()},
		{"Command line", commandline},
		{"Starting directory", es.StartingDirectory()},
		{"Geometry", fmt.Sprintf("%d x %d", es.InitialCols(), es.InitialRows())},
		{"History size", fmt.Sprintf("%d", es.HistorySize())},
		{"Font", fmt.Sprintf("%s %d (weight %d)", es.FontFace(), es.FontSize(), es.FontWeight())},
		{"Padding", es.Padding()},
		{"Cursor", fmt.Sprintf("%s (height %d)", es.CursorShape(), es.CursorHeight())},
		{"Scrollbar", string(es.ScrollbarState())},
		{"Foreground", es.DefaultForeground().Hex()},
		{"Background", es.DefaultBackground().Hex()},
		{"Selection", es.SelectionBackground().Hex()},
		{"Cursor color", es.CursorColor().Hex()},
		{"Palette 0-7", hexRow(0, 8)},
		{"Palette 8-15", hexRow(8, termcolor.TableSize)},
		{"Antialiasing", string(es.AntialiasingMode())},
		{"Word delimiters", es.WordDelimiters()},
	}

	if c, ok := es.TabColor(); ok {
		rows = append(rows, row{"Tab color", c.Hex()})
	}
	if es.UseAcrylic() {
		rows = append(rows, row{"Acrylic", fmt.Sprintf("tint %.2f", es.TintOpacity())})
	}
	if img := es.BackgroundImage(); img != "" {
		rows = append(rows,
			row{"Background image", img},
			row{"Image opacity", fmt.Sprintf("%.2f", es.BackgroundImageOpacity())},
			row{"Image stretch", string(es.BackgroundImageStretchMode())},
			row{"Image alignment", fmt.Sprintf("%s %s",
				es.BackgroundImageHorizontalAlignment(), es.BackgroundImageVerticalAlignment())},
		)
	}
	if es.RetroTerminalEffect() {
		rows = append(rows, row{"Retro effect", "on"})
	}

	width := 0
	for _, r := range rows {
		if l := runewidth.StringWidth(r.key); l > width {
			width = l
		}
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(r.key, width), r.value)
	}
}

func runListProfiles(cat *catalog.Catalog) error {
	profiles := cat.Profiles()

	width := 0
	for _, p := range profiles {
		if l := runewidth.StringWidth(p.Name); l > width {
			width = l
		}
	}
	for _, p := range profiles {
		marker := " "
		if p.GUID == cat.DefaultProfileID() {
			marker = "*"
		}
		commandline := p.Commandline
		if commandline == "" {
			commandline = "(login shell)"
		}
		fmt.Printf("%s %s  %s  %s\n", marker, runewidth.FillRight(p.Name, width), p.GUID, commandline)
	}
	return nil
}

func runListSchemes(cat *catalog.Catalog) error {
	schemes := cat.Schemes()
	names := schemes.Names()
	sort.Strings(names)

	width := 0
	for _, name := range names {
		if l := runewidth.StringWidth(name); l > width {
			width = l
		}
	}
	for _, name := range names {
		s, _ := schemes.Get(name)
		fmt.Printf("%s  fg %s  bg %s  %d colors\n",
			runewidth.FillRight(name, width), s.Foreground.Hex(), s.Background.Hex(), len(s.Table))
	}
	return nil
}

func runImportScheme(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read theme: %w", err)
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	s, err := scheme.ImportAlacritty(name, data)
	if err != nil {
		return err
	}
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func runHistory(journalPath string, limit int) error {
	if journalPath == "" {
		p, err := session.DefaultJournalPath()
		if err != nil {
			return fmt.Errorf("resolve journal path: %w", err)
		}
		journalPath = p
	}

	j, err := session.OpenJournal(journalPath)
	if err != nil {
		return err
	}
	defer j.Close()

	entries, err := j.Recent(limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no journaled launches")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s  %-12s  %dx%d  %s\n",
			e.LaunchedAt.Format("2006-01-02 15:04:05"), e.ProfileName, e.Cols, e.Rows, e.Commandline)
	}
	return nil
}

// runLaunch journals the launch, starts the session and wires this
// terminal to it until the child exits.
func runLaunch(journalPath string, id uuid.UUID, es *settings.EffectiveSettings) error {
	if journalPath == "" {
		if p, err := session.DefaultJournalPath(); err == nil {
			journalPath = p
		}
	}
	if journalPath != "" {
		if j, err := session.OpenJournal(journalPath); err != nil {
			log.Printf("texelsettings: journal unavailable: %v", err)
		} else {
			if err := j.RecordLaunch(id, es); err != nil {
				log.Printf("texelsettings: journal write failed: %v", err)
			}
			j.Close()
		}
	}

	sess, err := session.Launch(es)
	if err != nil {
		return err
	}
	defer sess.Stop()

	stdinFd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(stdinFd)
	if err != nil {
		return fmt.Errorf("MakeRaw: %w", err)
	}
	defer term.Restore(stdinFd, oldState)

	// Follow our window size; the initial send syncs the child once.
	winch := make(chan os.Signal, 1)
	signal.Notify(winch, syscall.SIGWINCH)
	defer signal.Stop(winch)
	go func() {
		for range winch {
			if cols, rows, err := term.GetSize(stdinFd); err == nil {
				sess.Resize(cols, rows)
			}
		}
	}()
	winch <- syscall.SIGWINCH

	go func() { _, _ = io.Copy(sess.PTY(), os.Stdin) }()
	go func() { _, _ = io.Copy(os.Stdout, sess.PTY()) }()

	err = sess.Wait()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// The child's exit status is its own business.
		return nil
	}
	return err
}
