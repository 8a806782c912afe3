package app

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/rgal/internal/pagination"
	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

const doubleClickThreshold = 300 * time.Millisecond

type click struct {
	tile int
	at   time.Time
}

// Run processes events until the user quits.
func (app *Application) Run() {
	defer app.screen.Fini()
	defer app.stop()

	app.render()
	renderPending := false

	eventChan := make(chan tcell.Event)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := app.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	var sigContCh chan os.Signal
	if sigs := contSignals(); len(sigs) > 0 {
		sigContCh = make(chan os.Signal, 1)
		signal.Notify(sigContCh, sigs...)
		defer signal.Stop(sigContCh)
	}

	for !app.shouldQuit {
		if renderPending {
			app.render()
			renderPending = false
		}

		select {
		case ev := <-eventChan:
			if app.handleEvent(ev) {
				renderPending = true
			}
		case action := <-app.actionCh:
			if app.handleAction(action) {
				renderPending = true
			}
		case <-sigContCh:
			if app.resumeAfterStop() {
				renderPending = true
			}
		}

		if app.processActions() {
			renderPending = true
		}
	}
}

func (app *Application) render() {
	app.renderer.Render(app.state, statepkg.BuildView(app.state))
}

func (app *Application) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		// Any key dismisses the last error.
		app.state.LastError = nil
		if !app.input.ProcessEvent(ev) {
			app.shouldQuit = true
		}
	case *tcell.EventResize:
		app.input.ProcessEvent(ev)
		app.screen.Sync()
	case *tcell.EventMouse:
		app.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true
	default:
		return false
	}
	return true
}

// handleMouse maps clicks on tiles, nav rows and page numbers to actions;
// a double click on a tile opens the viewer.
func (app *Application) handleMouse(ev *tcell.EventMouse) {
	if app.state.HelpVisible {
		return
	}
	buttons := ev.Buttons()

	if !app.state.ViewerOpen {
		switch {
		case buttons&tcell.WheelUp != 0:
			app.dispatch(statepkg.MoveCursorAction{Direction: "up"})
			return
		case buttons&tcell.WheelDown != 0:
			app.dispatch(statepkg.MoveCursorAction{Direction: "down"})
			return
		}
	}
	if buttons&tcell.Button1 == 0 {
		return
	}
	if app.state.ViewerOpen {
		app.dispatch(statepkg.CloseViewerAction{})
		return
	}

	layout, ok := app.renderer.LastLayout()
	if !ok {
		return
	}
	x, y := ev.Position()

	if page, ok := layout.PageAt(x, y); ok {
		app.dispatch(statepkg.SetPageAction{Page: page})
		return
	}
	if row, ok := layout.NavRowAt(x, y); ok {
		app.dispatch(statepkg.NavSelectAction{Row: row})
		return
	}
	if idx, ok := layout.TileAt(x, y); ok {
		now := time.Now()
		double := app.lastClick.tile == idx && now.Sub(app.lastClick.at) <= doubleClickThreshold
		app.lastClick = click{tile: idx, at: now}

		app.dispatch(statepkg.SetCursorAction{Index: idx})
		if double {
			app.dispatch(statepkg.OpenViewerAction{})
		}
	}
}

func (app *Application) processActions() bool {
	changed := false
	for {
		select {
		case action := <-app.actionCh:
			if app.handleAction(action) {
				changed = true
			}
		default:
			return changed
		}
	}
}

// handleAction runs app-level actions itself and hands the rest to the
// reducer. It reports whether a redraw is needed.
func (app *Application) handleAction(action statepkg.Action) bool {
	if action == nil {
		return false
	}

	switch a := action.(type) {
	case statepkg.QuitAction:
		app.shouldQuit = true
		return false
	case statepkg.SuspendAction:
		app.suspendToShell()
		app.resumeAfterStop()
		return true
	case statepkg.CopyValueAction:
		return app.handleCopy()
	case statepkg.CopyResultAction:
		return app.handleCopyResult(a)
	case statepkg.OpenAssetAction:
		return app.handleOpenAsset()
	case statepkg.ReloadCatalogAction:
		return app.handleReload()
	}

	return app.reduce(action)
}

func (app *Application) reduce(action statepkg.Action) bool {
	if _, err := app.reducer.Reduce(app.state, action); err != nil {
		if errors.Is(err, pagination.ErrInvalidPage) {
			app.logger.Debug("page rejected", "err", err)
			app.showNotice(statepkg.NoticeKeyJump, err.Error())
			return true
		}
		app.state.LastError = err
		app.logger.Warn("action failed", "action", fmt.Sprintf("%T", action), "err", err)
		return true
	}

	switch action.(type) {
	case statepkg.ToggleThemeAction:
		app.saveTheme()
	case statepkg.SetPageAction, statepkg.JumpToPageAction, statepkg.JumpSubmitAction, statepkg.JumpCancelAction:
		app.clearNotice(statepkg.NoticeKeyJump)
	}
	return true
}

// showNotice displays text under key and schedules its expiry, replacing
// any pending expiry for the same key.
func (app *Application) showNotice(key, text string) {
	if _, err := app.reducer.Reduce(app.state, statepkg.ShowNoticeAction{Key: key, Text: text}); err != nil {
		app.logger.Warn("notice failed", "key", key, "err", err)
		return
	}
	app.notices.Schedule(key, app.state.NoticeSeq(key), app.cfg.NoticeDuration)
}

// clearNotice removes the notice under key before its expiry.
func (app *Application) clearNotice(key string) {
	if _, ok := app.state.NoticeText(key); !ok {
		return
	}
	app.notices.Cancel(key)
	expire := statepkg.NoticeExpiredAction{Key: key, Seq: app.state.NoticeSeq(key)}
	if _, err := app.reducer.Reduce(app.state, expire); err != nil {
		app.logger.Warn("notice clear failed", "key", key, "err", err)
	}
}
