// AirframeDesk: Aircraft Design Data Entry
//
// A cross-platform desktop application for entering an aircraft component
// by component and exporting data sheets, tags and drawings.
//
// Build:
//   go build -o airframedesk ./cmd/airframedesk
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o airframedesk.exe ./cmd/airframedesk
//   GOOS=darwin  GOARCH=amd64 go build -o airframedesk-darwin ./cmd/airframedesk
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"errors"
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/AirframeDesk/internal/log"
	"github.com/piwi3910/AirframeDesk/internal/model"
	"github.com/piwi3910/AirframeDesk/internal/project"
	"github.com/piwi3910/AirframeDesk/internal/ui"
)

func main() {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot load config, using defaults: %v\n", err)
		config = model.DefaultAppConfig()
	}
	lg := log.New(config.LogLevel, config.LogDir)

	application := app.NewWithID("com.piwi3910.airframedesk")
	window := application.NewWindow("AirframeDesk - Aircraft Design Data Entry")

	appUI := ui.NewApp(application, window, config, lg)
	if err := appUI.RestoreSession(); err != nil && !errors.Is(err, os.ErrNotExist) {
		lg.Warn("session not restored", "error", err)
	}
	appUI.ApplyTheme()
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1400, 800))
	window.CenterOnScreen()
	window.SetCloseIntercept(func() {
		if err := appUI.StoreSession(); err != nil {
			lg.Error("session not stored", "error", err)
		}
		window.Close()
	})

	window.ShowAndRun()
}
