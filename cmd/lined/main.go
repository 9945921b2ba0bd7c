// Command lined is a demo REPL exercising the line editor: it reads lines
// with history, completion and highlighting, and echoes them back.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
	"src.lined.sh/pkg/histutil"
	"src.lined.sh/pkg/lined"
	"src.lined.sh/pkg/logutil"
	"src.lined.sh/pkg/store"
	"src.lined.sh/pkg/sys"
	"src.lined.sh/pkg/term"
	"src.lined.sh/pkg/ui"
)

var (
	configPath = flag.String("config", "", "path to a YAML config file")
	logPath    = flag.String("log", "", "path to a file to write debug logs")
)

type config struct {
	// Text and styling of the prompt. The style is parsed with
	// ui.ParseStyling, e.g. "green bold".
	Prompt      string `yaml:"prompt"`
	PromptStyle string `yaml:"prompt-style"`
	// Runes that delimit words for the word movement and kill commands.
	WordBreaks string `yaml:"word-breaks"`
	// Plain text history file, one command per line. Loaded on startup and
	// written back on exit. Ignored when db-file is set.
	HistoryFile string `yaml:"history-file"`
	// Maximum number of commands kept in the history file; the oldest ones
	// are dropped when writing it back. Non-positive means no limit.
	MaxHistory int `yaml:"max-history"`
	// Bolt database file for persistent history.
	DBFile string `yaml:"db-file"`
}

func defaultConfig() config {
	return config{Prompt: "> ", PromptStyle: "green"}
}

func main() {
	flag.Parse()
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "lined:", err)
		os.Exit(2)
	}
}

func run() error {
	if *logPath != "" {
		closer, err := logutil.SetOutputFile(*logPath)
		if err != nil {
			return err
		}
		defer closer.Close()
	}

	if !sys.IsATTY(os.Stdin.Fd()) {
		return fmt.Errorf("stdin is not a terminal")
	}

	cfg := defaultConfig()
	if *configPath != "" {
		content, err := os.ReadFile(*configPath)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(content, &cfg); err != nil {
			return fmt.Errorf("parse %s: %w", *configPath, err)
		}
	}

	history, saveHistory, err := makeHistory(cfg)
	if err != nil {
		return err
	}
	defer saveHistory()

	ed := lined.NewEditor(lined.NewTTY(os.Stdin, os.Stderr)).
		SetPrompt(lined.NewConstPrompt(
			ui.T(cfg.Prompt, ui.ParseStyling(cfg.PromptStyle)))).
		SetHighlighter(highlight).
		SetCompleter(completeFilename).
		SetHistory(history)
	if cfg.WordBreaks != "" {
		ed.SetWordBreaks(cfg.WordBreaks)
	}

	for {
		result, err := ed.Read()
		if err != nil {
			return err
		}
		switch result.Kind {
		case lined.ResultOK:
			if cmd := strings.TrimPrefix(result.Code, "!"); cmd != result.Code {
				runCommand(cmd)
			} else if result.Code != "" {
				fmt.Println("you typed:", result.Code)
			}
		case lined.ResultCancel:
			// Discarded line; prompt again.
		case lined.ResultQuit:
			return nil
		}
	}
}

// Runs a line prefixed with "!" as an external command. The command may have
// messed with the terminal configuration, so sanitize it afterwards.
func runCommand(cmd string) {
	c := exec.Command("sh", "-c", cmd)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "lined:", err)
	}
	term.Sanitize(os.Stdin, os.Stderr)
}

// Returns the history store per the config, together with a function that
// flushes it on exit.
func makeHistory(cfg config) (histutil.Store, func(), error) {
	switch {
	case cfg.DBFile != "":
		db, err := store.NewStore(cfg.DBFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s: %w", cfg.DBFile, err)
		}
		return histutil.NewDBStore(db), func() { db.Close() }, nil
	case cfg.HistoryFile != "":
		var texts []string
		if f, err := os.Open(cfg.HistoryFile); err == nil {
			cmds, err := histutil.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, nil, fmt.Errorf("read %s: %w", cfg.HistoryFile, err)
			}
			for _, cmd := range cmds {
				texts = append(texts, cmd.Text)
			}
		} else if !os.IsNotExist(err) {
			return nil, nil, err
		}
		s := histutil.NewMemStore(texts...)
		save := func() {
			cmds, err := s.AllCmds()
			if err != nil {
				return
			}
			cmds = histutil.LastCmds(cmds, cfg.MaxHistory)
			f, err := os.Create(cfg.HistoryFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, "lined: save history:", err)
				return
			}
			defer f.Close()
			if err := histutil.WriteAll(f, cmds); err != nil {
				fmt.Fprintln(os.Stderr, "lined: save history:", err)
			}
		}
		return s, save, nil
	default:
		return histutil.NewMemStore(), func() {}, nil
	}
}

// Styles the first word of the line, leaving the rest unchanged.
func highlight(code string) ui.Text {
	i := strings.IndexByte(code, ' ')
	if i == -1 {
		return ui.T(code, ui.FgGreen)
	}
	t := ui.T(code[:i], ui.FgGreen)
	return append(t, ui.T(code[i:])...)
}

// Completes the seed as a filename relative to the working directory.
func completeFilename(seed string) []string {
	dir, base := filepath.Split(seed)
	readDir := dir
	if readDir == "" {
		readDir = "."
	}
	entries, err := os.ReadDir(readDir)
	if err != nil {
		return nil
	}
	var candidates []string
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, base) {
			continue
		}
		if entry.IsDir() {
			name += string(filepath.Separator)
		}
		candidates = append(candidates, dir+name)
	}
	sort.Strings(candidates)
	return candidates
}
