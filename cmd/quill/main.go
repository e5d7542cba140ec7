package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/buffer"
	"github.com/iw2rmb/quill/config"
	"github.com/iw2rmb/quill/editor"
	"github.com/iw2rmb/quill/internal/watch"
)

type model struct {
	editor editor.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "quill:", err)
		os.Exit(1)
	}
}

func run() error {
	defaultConfig, _ := config.DefaultPath()
	configPath := flag.String("config", defaultConfig, "path to config file")
	logPath := flag.String("log", "", "path to log file (overrides config)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [file]\n", quill.Name)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println(quill.Name, quill.VersionTag())
		return nil
	}
	if flag.NArg() > 1 {
		flag.Usage()
		return errors.New("at most one file may be opened")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdin and stdout must be a terminal")
	}

	cfg, cfgErr := config.Load(*configPath)
	if *logPath != "" {
		cfg.Logging.FilePath = *logPath
	}

	logger, closeLog, err := openLog(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	if cfgErr != nil {
		logger.Warn("config", "path", *configPath, "err", cfgErr)
	}

	path := flag.Arg(0)
	doc, loadErr := openDocument(path)
	if loadErr != nil {
		logger.Error("open failed", "path", path, "err", loadErr)
	} else if path != "" {
		logger.Info("opened", "path", path, "lines", doc.LineCount())
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes <-chan watch.Event
	if doc.Path() != "" && cfg.Editor.WatchFile {
		w, err := watch.New(ctx, doc.Path())
		if err != nil {
			logger.Warn("watch disabled", "path", doc.Path(), "err", err)
		} else {
			defer w.Close()
			changes = w.Events()
			go logWatchErrors(ctx, logger, w.Errors())
		}
	}

	ed := editor.New(editor.Config{
		Document:       doc,
		ShowLineNums:   cfg.Editor.ShowLineNumbers,
		Style:          editor.DefaultStyle(),
		Palette:        editor.HighlightPalette(cfg.Colors.Number, cfg.Colors.Match),
		KeyMap:         editor.DefaultKeyMap().WithBindings(cfg.Keybindings),
		QuitTimes:      cfg.Editor.QuitTimes,
		MessageTimeout: cfg.Editor.MessageTimeout,
		Changes:        changes,
		Logger:         logger,
	})
	if loadErr != nil {
		ed = ed.Notify("ERR: Could not open file: %v", loadErr)
	}

	p := tea.NewProgram(model{editor: ed}, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}

// openDocument loads path. A missing file opens an empty document that will
// be created on save; any other failure falls back to an unnamed document.
func openDocument(path string) (*buffer.Document, error) {
	if path == "" {
		return buffer.New(), nil
	}
	doc, err := buffer.Open(path)
	if err == nil {
		return doc, nil
	}
	doc = buffer.New()
	if errors.Is(err, fs.ErrNotExist) {
		doc.SetPath(path)
		return doc, nil
	}
	return doc, err
}

func openLog(cfg *config.Config) (*slog.Logger, func(), error) {
	path := cfg.Logging.FilePath
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := tea.LogToFile(path, quill.Name)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	return logger, func() { _ = f.Close() }, nil
}

func logWatchErrors(ctx context.Context, logger *slog.Logger, errs <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err := <-errs:
			logger.Warn("watch", "err", err)
		}
	}
}
