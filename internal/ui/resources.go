package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

const (
	AppIcon = "webp-uploader.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// newLogo returns the logo image, or nil when the icon file is missing
func newLogo() *canvas.Image {
	logo, err := LoadLogoResource()
	if err != nil {
		return nil
	}
	img := canvas.NewImageFromResource(logo)
	img.SetMinSize(fyne.NewSize(32, 32))
	img.FillMode = canvas.ImageFillContain
	return img
}
