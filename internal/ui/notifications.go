package ui

import (
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/go-kit/log/level"

	"github.com/ytget/webp-uploader/internal/i18n"
	"github.com/ytget/webp-uploader/internal/platform"
)

// sendCompletionNotification sends a system notification and shows the toast
func (ui *RootUI) sendCompletionNotification(path string) {
	ui.app.SendNotification(&fyne.Notification{
		Title:   ui.localization.GetText(i18n.KeyDone),
		Content: i18n.Format(ui.localization, i18n.KeyArchiveSaved, filepath.Base(path)),
	})

	ui.showToastNotification(path)
}

// showToastNotification shows an in-app toast with actions for the archive
func (ui *RootUI) showToastNotification(path string) {
	t := ui.localization.GetText

	titleLabel := widget.NewLabel(t(i18n.KeyDone))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(filepath.Base(path))
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	revealBtn := widget.NewButton(t(i18n.KeyReveal), func() {
		ui.onRevealFile(path)
	})
	revealBtn.Importance = widget.HighImportance

	openBtn := widget.NewButton(t(i18n.KeyOpen), func() {
		ui.onOpenFile(path)
	})

	copyBtn := widget.NewButton(t(i18n.KeyCopyPath), func() {
		ui.onCopyPath(path)
	})
	copyBtn.Importance = widget.LowImportance

	var toastPopup *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	actions := container.NewHBox(revealBtn, openBtn, copyBtn)
	content := container.NewVBox(header, messageLabel, actions)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPopup.Resize(toastSize)
	toastPopup.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toastPopup.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toastPopup.Hide)
	})
}

// onRevealFile highlights the file in the system file manager
func (ui *RootUI) onRevealFile(path string) {
	if err := platform.OpenFileInManager(path); err != nil {
		level.Warn(ui.logger).Log("method", "onRevealFile", "path", path, "err", err)
		ui.showPopUpMessage(ui.localization.GetText(i18n.KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onOpenFile opens the file with the default application
func (ui *RootUI) onOpenFile(path string) {
	if err := platform.OpenFileWithDefaultApp(path); err != nil {
		level.Warn(ui.logger).Log("method", "onOpenFile", "path", path, "err", err)
		ui.showPopUpMessage(ui.localization.GetText(i18n.KeyErrorOpeningFile) + ": " + err.Error())
	}
}

// onCopyPath copies the archive path to the clipboard
func (ui *RootUI) onCopyPath(path string) {
	ui.app.Clipboard().SetContent(path)
	ui.showPopUpMessage(ui.localization.GetText(i18n.KeyPathCopied))
}

func (ui *RootUI) showPopUpMessage(text string) {
	widget.ShowPopUp(widget.NewLabel(text), ui.window.Canvas())
}
