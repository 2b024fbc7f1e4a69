package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/pptconv/mp4-converter/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.pptconv.mp4-converter")
	myWindow := myApp.NewWindow("PPT MP4 Converter")
	myWindow.Resize(fyne.NewSize(880, 600))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp)

	// Show and run
	myWindow.ShowAndRun()
}
