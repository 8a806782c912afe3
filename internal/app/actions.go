package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/kk-code-lab/rgal/internal/catalog"
	"github.com/kk-code-lab/rgal/internal/prefs"
	statepkg "github.com/kk-code-lab/rgal/internal/state"
)

const clipboardTimeout = 3 * time.Second

var errReloadStdin = errors.New("catalog was read from stdin and cannot be reloaded")

// actionTarget is the asset an action applies to: the one in the viewer,
// otherwise the one under the gallery cursor.
func (app *Application) actionTarget() (statepkg.DecoratedAsset, bool) {
	if app.state.ViewerOpen && app.state.ViewerAsset != "" {
		id := app.state.ViewerAsset
		decoded := app.state.Decode(id)
		return statepkg.DecoratedAsset{AssetID: id, DisplayLabel: decoded.DisplayLabel, CopyValue: decoded.CopyValue}, true
	}
	if app.state.Focus != statepkg.FocusGallery {
		return statepkg.DecoratedAsset{}, false
	}
	return app.state.CursorAsset()
}

// handleCopy writes the target's copy value on a goroutine; the outcome comes
// back as CopyResultAction.
func (app *Application) handleCopy() bool {
	item, ok := app.actionTarget()
	if !ok {
		return false
	}
	if !app.state.ClipboardAvailable {
		app.logger.Warn("copy skipped: clipboard unavailable", "asset", string(item.AssetID))
		return false
	}

	writer := app.clipboard
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), clipboardTimeout)
		defer cancel()
		err := writer.Write(ctx, item.CopyValue)
		app.dispatch(statepkg.CopyResultAction{Asset: item.AssetID, Value: item.CopyValue, Err: err})
	}()
	return false
}

// handleCopyResult confirms a successful copy on the tile. A failed copy is
// only logged.
func (app *Application) handleCopyResult(result statepkg.CopyResultAction) bool {
	if result.Err != nil {
		app.logger.Warn("copy failed", "asset", string(result.Asset), "err", result.Err)
		return false
	}
	app.logger.Debug("copied", "asset", string(result.Asset), "value", result.Value)
	app.showNotice(statepkg.CopyNoticeKey(result.Asset), statepkg.CopyNoticeText(result.Value))
	return true
}

// handleOpenAsset hands the target asset to the desktop viewer.
func (app *Application) handleOpenAsset() bool {
	item, ok := app.actionTarget()
	if !ok || len(app.openerCmd) == 0 {
		return false
	}

	target := app.assetLocation(item.AssetID)
	args := append(append([]string(nil), app.openerCmd...), target)
	if err := app.startCmd(args); err != nil {
		app.state.LastError = fmt.Errorf("open %s: %w", target, err)
		app.logger.Warn("open failed", "target", target, "err", err)
		return true
	}
	app.logger.Info("opened asset", "target", target)
	return false
}

// assetLocation resolves an asset ID to a URL or a path under the asset root.
func (app *Application) assetLocation(id catalog.AssetID) string {
	raw := string(id)
	if strings.Contains(raw, "://") {
		return raw
	}
	p, _ := catalog.Unescape(raw)
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(app.assetRoot, filepath.FromSlash(p))
}

// handleReload re-reads the catalog file, keeping the selection and search
// where they still apply.
func (app *Application) handleReload() bool {
	if app.catalogPath == "" || app.catalogPath == "-" {
		app.state.LastError = errReloadStdin
		return true
	}

	cat, err := catalog.ReadFile(app.catalogPath)
	if err != nil {
		app.state.LastError = err
		app.logger.Warn("reload failed", "path", app.catalogPath, "err", err)
		return true
	}
	if _, err := app.reducer.Reduce(app.state, statepkg.CatalogLoadedAction{Catalog: cat}); err != nil {
		app.state.LastError = err
		return true
	}
	app.logger.Info("catalog reloaded",
		"path", app.catalogPath,
		"groups", len(cat.Groups),
		"assets", cat.AssetCount(),
	)
	return true
}

func (app *Application) saveTheme() {
	if app.prefs == nil {
		return
	}
	if err := app.prefs.Set(prefs.KeyTheme, string(app.state.Theme)); err != nil {
		app.logger.Warn("saving theme preference failed", "err", err)
	}
}
