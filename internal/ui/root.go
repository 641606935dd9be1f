package ui

import (
	"context"
	"errors"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/ytget/webp-uploader/internal/config"
	"github.com/ytget/webp-uploader/internal/controller"
	"github.com/ytget/webp-uploader/internal/estimate"
	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/model"
	"github.com/ytget/webp-uploader/internal/platform"
)

// Split between the file list and the results log
const ResultsSplitOffset = 0.68

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *i18n.Localization
	client       *controller.Client
	logger       log.Logger

	// cancels the running upload cycle when the window closes
	ctx    context.Context
	cancel context.CancelFunc

	// rows from the last render; only touched on the Fyne goroutine
	rows []controller.Row

	selectBtn     *widget.Button
	folderBtn     *widget.Button
	uploadBtn     *widget.Button
	themeBtn      *widget.Button
	settingsBtn   *widget.Button
	qualityLabel  *widget.Label
	qualitySlider *widget.Slider
	dropHint      *widget.Label
	fileList      *widget.List
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
	results       *ResultsPanel
}

// NewRootUI creates and initializes the main UI and the controller it renders
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, localization *i18n.Localization, deps controller.Deps, logger log.Logger) *RootUI {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		logger:       logger,
		ctx:          ctx,
		cancel:       cancel,
	}

	deps.Quality = settings
	deps.Texts = localization
	ui.client = controller.NewClient(deps, ui)

	window.SetOnDropped(ui.onDropped)

	ui.setupUI()
	level.Debug(ui.logger).Log("msg", "UI setup completed")
	return ui
}

// Client returns the controller driven by this UI
func (ui *RootUI) Client() *controller.Client {
	return ui.client
}

// Shutdown cancels a running upload cycle
func (ui *RootUI) Shutdown() {
	ui.cancel()
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	t := ui.localization.GetText

	ui.createMenu()

	ui.selectBtn = widget.NewButton(t(i18n.KeySelectImages), ui.onSelectFiles)
	ui.folderBtn = widget.NewButton(IconFolder, ui.onSelectFolder)
	ui.folderBtn.Importance = widget.LowImportance

	ui.themeBtn = widget.NewButton(themeIcon(ui.settings.GetTheme()), ui.onToggleTheme)
	ui.themeBtn.Importance = widget.LowImportance

	ui.settingsBtn = widget.NewButton(IconSettings, ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	leftTools := container.NewHBox(ui.selectBtn, ui.folderBtn)
	if logo := newLogo(); logo != nil {
		leftTools = container.NewHBox(logo, ui.selectBtn, ui.folderBtn)
	}
	toolbar := container.NewHBox(leftTools, layout.NewSpacer(), ui.themeBtn, ui.settingsBtn)

	// Quality slider
	ui.qualityLabel = widget.NewLabel("")
	ui.qualitySlider = widget.NewSlider(estimate.MinQuality, estimate.MaxQuality)
	ui.qualitySlider.Step = 1
	ui.qualitySlider.SetValue(float64(ui.client.Quality()))
	ui.qualitySlider.OnChanged = ui.onQualityChanged
	ui.updateQualityLabel(ui.client.Quality())
	qualityRow := container.NewBorder(nil, nil, ui.qualityLabel, nil, ui.qualitySlider)

	// File list
	ui.fileList = widget.NewList(
		func() int {
			return len(ui.rows)
		},
		func() fyne.CanvasObject {
			return NewFileRow(ui.localization, ui.onRemove)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.updateFileRow(id, obj)
		},
	)
	ui.dropHint = widget.NewLabel(t(i18n.KeyDropHint))
	ui.dropHint.Alignment = fyne.TextAlignCenter
	files := container.NewStack(ui.fileList, container.NewCenter(ui.dropHint))

	ui.results = NewResultsPanel(ui.localization)
	split := container.NewVSplit(files, ui.results.Container())
	split.Offset = ResultsSplitOffset

	// Upload controls
	ui.uploadBtn = widget.NewButton(t(i18n.KeyUpload), ui.onUploadClick)
	ui.uploadBtn.Importance = widget.HighImportance
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(t(i18n.KeyReady))
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	statusRow := container.NewBorder(nil, nil, nil, ui.uploadBtn, ui.statusLabel)

	content := container.NewBorder(
		container.NewVBox(toolbar, qualityRow), // top
		container.NewVBox(ui.progressBar, statusRow), // bottom
		nil,   // left
		nil,   // right
		split, // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	t := ui.localization.GetText

	settingsItem := fyne.NewMenuItem(t(i18n.KeySettings), ui.onShowSettings)
	themeItem := fyne.NewMenuItem(t(i18n.KeyToggleTheme), ui.onToggleTheme)
	selectItem := fyne.NewMenuItem(t(i18n.KeySelectImages), ui.onSelectFiles)
	folderItem := fyne.NewMenuItem(t(i18n.KeyAddFolder), ui.onSelectFolder)

	// Language submenu
	languageMenu := fyne.NewMenu(t(i18n.KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(t(i18n.KeyFile), selectItem, folderItem, fyne.NewMenuItemSeparator(), themeItem, settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.selectBtn.SetText(t(i18n.KeySelectImages))
	ui.uploadBtn.SetText(t(i18n.KeyUpload))
	ui.dropHint.SetText(t(i18n.KeyDropHint))
	ui.updateQualityLabel(ui.client.Quality())
	ui.results.RefreshTexts()

	// Rows carry formatted text, so let the controller re-render them
	ui.client.Refresh()
}

// updateFileRow fills a template row with the row rendered at id
func (ui *RootUI) updateFileRow(id widget.ListItemID, obj fyne.CanvasObject) {
	if id >= len(ui.rows) {
		return
	}
	if fileRow, ok := obj.(*FileRow); ok {
		fileRow.SetRow(ui.rows[id])
	}
}

// onSelectFiles opens the image picker
func (ui *RootUI) onSelectFiles() {
	picker := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		ui.addPaths([]string{path})
	}, ui.window)
	picker.SetFilter(storage.NewExtensionFileFilter(platform.ImageExtensions))
	picker.Show()
}

// onSelectFolder adds every image in a folder
func (ui *RootUI) onSelectFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		children, err := uri.List()
		if err != nil {
			level.Warn(ui.logger).Log("method", "onSelectFolder", "err", err)
			return
		}

		paths := make([]string, 0, len(children))
		for _, child := range children {
			if platform.IsImageFile(child.Name()) {
				paths = append(paths, child.Path())
			}
		}
		ui.addPaths(paths)
	}, ui.window)
}

// onDropped handles files dropped onto the window
func (ui *RootUI) onDropped(_ fyne.Position, uris []fyne.URI) {
	paths := make([]string, 0, len(uris))
	for _, uri := range uris {
		paths = append(paths, uri.Path())
	}
	ui.addPaths(paths)
}

// addPaths stats paths and adds the images to the selection
func (ui *RootUI) addPaths(paths []string) {
	files, errs := platform.CollectSelectedFiles(paths)
	for _, err := range errs {
		level.Debug(ui.logger).Log("method", "addPaths", "skipped", err)
	}

	ui.client.AddFiles(files...)

	if len(errs) > 0 {
		ui.SetStatus(i18n.Format(ui.localization, i18n.KeySkippedFiles, len(errs)))
	}
}

// onRemove handles the remove button of a row
func (ui *RootUI) onRemove(index int) {
	if err := ui.client.Remove(index); err != nil {
		level.Debug(ui.logger).Log("method", "onRemove", "index", index, "err", err)
	}
}

// onQualityChanged handles slider moves
func (ui *RootUI) onQualityChanged(value float64) {
	q := ui.client.SetQuality(int(value))
	ui.updateQualityLabel(q)
}

func (ui *RootUI) updateQualityLabel(q int) {
	ui.qualityLabel.SetText(fmt.Sprintf(QualityLabelFormat, ui.localization.GetText(i18n.KeyQuality), q))
}

// onUploadClick starts an upload cycle in the background
func (ui *RootUI) onUploadClick() {
	go func() {
		err := ui.client.Upload(ui.ctx)
		switch {
		case err == nil:
		case errors.Is(err, model.ErrBusy):
			ui.SetStatus(ui.localization.GetText(i18n.KeyBusy))
		default:
			level.Info(ui.logger).Log("method", "onUploadClick", "err", err)
		}
	}()
}

// onToggleTheme flips between light and dark
func (ui *RootUI) onToggleTheme() {
	mode := ui.settings.ToggleTheme()
	ui.app.Settings().SetTheme(NewCompactTheme(mode))
	ui.themeBtn.SetText(themeIcon(mode))
}

// themeIcon shows the mode a click switches to
func themeIcon(mode config.Theme) string {
	if mode == config.ThemeDark {
		return IconThemeLite
	}
	return IconThemeDark
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, ui.applySettings)
}

// applySettings pushes saved settings into the running services
func (ui *RootUI) applySettings() {
	ui.client.SetServerURL(ui.settings.GetServerURL())

	downloadDir := ui.settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadDir); err != nil {
		level.Warn(ui.logger).Log("method", "applySettings", "err", err)
	}
	ui.client.SetDownloadDirectory(downloadDir)

	if ui.settings.GetLanguage() != ui.localization.GetCurrentLanguage() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
	}
}

// RenderRows rebuilds the file list
func (ui *RootUI) RenderRows(rows []controller.Row) {
	fyne.Do(func() {
		ui.rows = rows
		ui.fileList.UnselectAll()
		ui.fileList.Refresh()
		if len(rows) == 0 {
			ui.dropHint.Show()
		} else {
			ui.dropHint.Hide()
		}
	})
}

// UpdateRows refreshes the size text of the rendered rows
func (ui *RootUI) UpdateRows(rows []controller.Row) {
	fyne.Do(func() {
		ui.rows = rows
		for i := range rows {
			ui.fileList.RefreshItem(i)
		}
	})
}

// SetStatus shows text in the status line
func (ui *RootUI) SetStatus(text string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(text)
	})
}

// SetProgress sets the progress bar, percent is 0 to 100
func (ui *RootUI) SetProgress(percent float64) {
	fyne.Do(func() {
		ui.progressBar.SetValue(percent / model.MaxProgressPercent)
	})
}

// SetBusy disables the upload button while a cycle runs
func (ui *RootUI) SetBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			ui.uploadBtn.Disable()
		} else {
			ui.uploadBtn.Enable()
		}
	})
}

// SetResults shows the results log
func (ui *RootUI) SetResults(lines []model.ResultLine) {
	fyne.Do(func() {
		ui.results.SetLines(lines)
	})
}

// Alert shows a blocking message
func (ui *RootUI) Alert(message string) {
	fyne.Do(func() {
		dialog.ShowInformation(ui.localization.GetText(i18n.KeyAppTitle), message, ui.window)
	})
}

// ArchiveSaved notifies about the saved archive and reveals it when enabled
func (ui *RootUI) ArchiveSaved(path string) {
	fyne.Do(func() {
		ui.statusLabel.SetText(i18n.Format(ui.localization, i18n.KeyArchiveSaved, path))
		ui.sendCompletionNotification(path)

		if ui.settings.GetAutoRevealOnComplete() {
			ui.onRevealFile(path)
		}
	})
}
