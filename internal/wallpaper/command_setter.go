package wallpaper

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"runtime"

	"github.com/mmcdole/walls/internal/domain"
	"github.com/mmcdole/walls/internal/fsys"
)

// Setter modes accepted by NewSetter
const (
	SetterLog  = "log"
	SetterAuto = "auto"
)

// ErrNoSetter is returned when no wallpaper tool could be run
var ErrNoSetter = errors.New("no wallpaper tool available")

var _ domain.WallpaperSetter = (*CommandSetter)(nil)

type screen int

const (
	screenHome screen = iota
	screenLock
)

// setterTool defines how one external program applies a wallpaper
type setterTool struct {
	lock bool // Can also set the lock screen
	args func(path string, s screen) []string
}

// tools registry - known wallpaper programs
var tools = map[string]setterTool{
	"gsettings": {
		lock: true,
		args: func(path string, s screen) []string {
			schema := "org.gnome.desktop.background"
			if s == screenLock {
				schema = "org.gnome.desktop.screensaver"
			}
			return []string{"set", schema, "picture-uri", fsys.WithScheme(path)}
		},
	},
	"swww": {
		args: func(path string, _ screen) []string { return []string{"img", path} },
	},
	"feh": {
		args: func(path string, _ screen) []string { return []string{"--bg-fill", path} },
	},
	"osascript": {
		args: func(path string, _ screen) []string {
			return []string{"-e", fmt.Sprintf(`tell application "System Events" to tell every desktop to set picture to %q`, path)}
		},
	},
}

// candidateTools defines the preferred tool order for each platform
var candidateTools = map[string][]string{
	"darwin": {"osascript"},
	"linux":  {"gsettings", "swww", "feh"},
}

// CommandSetter applies wallpapers by running an external program
type CommandSetter struct {
	command string   // configured command, empty to detect
	args    []string // arguments placed before the image path
	logger  *slog.Logger

	candidates []string

	lookPath func(string) (string, error)
	run      func(ctx context.Context, name string, args ...string) error
}

// NewSetter returns the setter for a configured mode: "log" (or empty)
// only logs, "auto" detects a platform tool, anything else is a command.
func NewSetter(mode string, args []string, logger *slog.Logger) domain.WallpaperSetter {
	switch mode {
	case "", SetterLog:
		return NewLogSetter(logger)
	case SetterAuto:
		return NewCommandSetter("", nil, logger)
	default:
		return NewCommandSetter(mode, args, logger)
	}
}

func NewCommandSetter(command string, args []string, logger *slog.Logger) *CommandSetter {
	if logger == nil {
		logger = slog.Default()
	}
	candidates, ok := candidateTools[runtime.GOOS]
	if !ok {
		candidates = candidateTools["linux"]
	}
	return &CommandSetter{
		command:    command,
		args:       args,
		logger:     logger,
		candidates: candidates,
		lookPath:   exec.LookPath,
		run: func(ctx context.Context, name string, args ...string) error {
			return exec.CommandContext(ctx, name, args...).Run()
		},
	}
}

// SetWallpaper applies the image at localURI to the screens of target
func (c *CommandSetter) SetWallpaper(ctx context.Context, localURI string, target domain.Action) error {
	screens := screensFor(target)
	if len(screens) == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownAction, target)
	}
	path := fsys.StripScheme(localURI)

	// Tier 1: user configured a specific command
	if c.command != "" {
		args := append(append([]string{}, c.args...), path)
		c.logger.Info("running configured wallpaper command", "command", c.command, "args", args, "screen", string(target))
		if err := c.run(ctx, c.command, args...); err != nil {
			return fmt.Errorf("run %s: %w", c.command, err)
		}
		return nil
	}

	// Tier 2: candidate chain for this platform
	for _, name := range c.candidates {
		tool := tools[name]
		if target == domain.ActionLockScreen && !tool.lock {
			c.logger.Debug("tool cannot set lock screen", "tool", name)
			continue
		}
		bin, err := c.lookPath(name)
		if err != nil {
			c.logger.Debug("wallpaper tool not available", "tool", name, "error", err)
			continue
		}
		if err := c.apply(ctx, bin, tool, path, screens); err != nil {
			c.logger.Debug("wallpaper tool failed", "tool", name, "error", err)
			continue
		}
		c.logger.Info("set wallpaper with detected tool", "tool", name, "path", path, "screen", string(target))
		return nil
	}

	return ErrNoSetter
}

func (c *CommandSetter) apply(ctx context.Context, bin string, tool setterTool, path string, screens []screen) error {
	for _, s := range screens {
		if s == screenLock && !tool.lock {
			c.logger.Warn("lock screen not supported, skipping", "tool", filepath.Base(bin))
			continue
		}
		if err := c.run(ctx, bin, tool.args(path, s)...); err != nil {
			return err
		}
	}
	return nil
}

func screensFor(target domain.Action) []screen {
	switch target {
	case domain.ActionHomeScreen:
		return []screen{screenHome}
	case domain.ActionLockScreen:
		return []screen{screenLock}
	case domain.ActionBoth:
		return []screen{screenHome, screenLock}
	default:
		return nil
	}
}

