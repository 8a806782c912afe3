package app

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/clipboard"
	"github.com/kk-code-lab/rgal/internal/config"
	"github.com/kk-code-lab/rgal/internal/prefs"
	statepkg "github.com/kk-code-lab/rgal/internal/state"
	inputui "github.com/kk-code-lab/rgal/internal/ui/input"
	renderui "github.com/kk-code-lab/rgal/internal/ui/render"
)

// Options wires the application's collaborators.
type Options struct {
	Catalog *catalog.Catalog
	// CatalogPath is where Catalog came from; "-" means stdin and disables
	// reloading.
	CatalogPath string
	// AssetRoot resolves relative asset IDs for the system opener. Defaults
	// to the catalog's directory, or the working directory for stdin.
	AssetRoot string

	Config    config.Config
	Logger    *slog.Logger
	Clipboard clipboard.Writer
	Prefs     prefs.Store

	// Screen overrides the terminal, for tests.
	Screen tcell.Screen
}

// Application represents the running app.
type Application struct {
	screen     tcell.Screen
	state      *statepkg.AppState
	reducer    *statepkg.StateReducer
	renderer   *renderui.Renderer
	input      *inputui.InputHandler
	actionCh   chan statepkg.Action
	notices    *transientScheduler
	shouldQuit bool

	// done is closed once the loop stops; queued dispatches give up then.
	done     chan struct{}
	stopOnce sync.Once
	pending  sync.WaitGroup

	logger    *slog.Logger
	clipboard clipboard.Writer
	prefs     prefs.Store
	cfg       config.Config

	catalogPath string
	assetRoot   string
	openerCmd   []string
	startCmd    func(args []string) error

	lastClick click
}

// NewApplication initializes the terminal and the initial state.
func NewApplication(opts Options) (*Application, error) {
	screen := opts.Screen
	if screen == nil {
		var err error
		screen, err = tcell.NewScreen()
		if err != nil {
			return nil, err
		}
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	openerCmd, _ := detectOpener()
	return newApplication(screen, opts, openerCmd), nil
}

func newApplication(screen tcell.Screen, opts Options, openerCmd []string) *Application {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	cfg := opts.Config
	if cfg.PageSize == 0 {
		cfg = config.Default().Merge(cfg)
	}
	writer := opts.Clipboard
	if writer == nil {
		writer = clipboard.NewSystem()
	}

	state := statepkg.NewAppState(opts.Catalog, statepkg.Options{
		PageSize:     cfg.PageSize,
		DefaultScope: cfg.DefaultScope,
		Theme:        initialTheme(opts.Prefs, cfg.Theme),
	})
	state.ClipboardAvailable = clipboardAvailable(writer)
	state.OpenerAvailable = len(openerCmd) > 0
	state.ScreenWidth, state.ScreenHeight = screen.Size()

	actionCh := make(chan statepkg.Action, 16)
	app := &Application{
		screen:      screen,
		state:       state,
		reducer:     statepkg.NewStateReducer(),
		renderer:    renderui.NewRenderer(screen),
		input:       inputui.NewInputHandler(actionCh),
		actionCh:    actionCh,
		done:        make(chan struct{}),
		logger:      logger,
		clipboard:   writer,
		prefs:       opts.Prefs,
		cfg:         cfg,
		catalogPath: opts.CatalogPath,
		assetRoot:   assetRoot(opts.AssetRoot, opts.CatalogPath),
		openerCmd:   openerCmd,
		startCmd:    startDetached,
	}
	app.notices = newTransientScheduler(app.dispatch)
	app.input.SetState(state)

	logger.Info("catalog loaded",
		slog.String("path", opts.CatalogPath),
		slog.Int("groups", len(state.Catalog.Groups)),
		slog.Int("assets", state.Catalog.AssetCount()),
		slog.Bool("clipboard", state.ClipboardAvailable),
		slog.Bool("opener", state.OpenerAvailable),
	)
	return app
}

// initialTheme prefers the stored preference over the configured default.
func initialTheme(store prefs.Store, configured string) statepkg.Theme {
	if store != nil {
		if stored, ok := store.Get(prefs.KeyTheme); ok {
			return statepkg.ParseTheme(stored)
		}
	}
	return statepkg.ParseTheme(configured)
}

func clipboardAvailable(w clipboard.Writer) bool {
	if a, ok := w.(interface{ Available() bool }); ok {
		return a.Available()
	}
	return w != nil
}

func assetRoot(root, catalogPath string) string {
	if root != "" {
		return root
	}
	if catalogPath != "" && catalogPath != "-" {
		return filepath.Dir(catalogPath)
	}
	if cwd, err := os.Getwd(); err == nil {
		return cwd
	}
	return "."
}

// dispatch queues an action for the event loop without blocking the caller.
// Once the loop has stopped, actions are dropped.
func (app *Application) dispatch(action statepkg.Action) {
	select {
	case <-app.done:
		return
	default:
	}
	select {
	case app.actionCh <- action:
	default:
		app.pending.Add(1)
		go func() {
			defer app.pending.Done()
			select {
			case app.actionCh <- action:
			case <-app.done:
			}
		}()
	}
}

// stop ends notice timers and releases dispatches waiting on a full queue.
func (app *Application) stop() {
	app.stopOnce.Do(func() {
		close(app.done)
		app.notices.Stop()
	})
}

// State exposes the current state, for tests and the entry point.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

// Close cleans up resources.
func (app *Application) Close() error {
	app.stop()
	app.screen.Fini()
	return nil
}
