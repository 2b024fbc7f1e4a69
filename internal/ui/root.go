package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/pptconv/mp4-converter/internal/config"
	"github.com/pptconv/mp4-converter/internal/convert"
	"github.com/pptconv/mp4-converter/internal/model"
	"github.com/pptconv/mp4-converter/internal/platform"
)

// RootUI represents the main UI structure
type RootUI struct {
	window   fyne.Window
	settings *config.Settings

	files    []string
	fileList *widget.List

	outDirEntry      *widget.Entry
	profileSelect    *widget.Select
	speedSelect      *widget.Select
	customSpeedEntry *widget.Entry
	normalizeCheck   *widget.Check
	overwriteCheck   *widget.Check

	progressBar *widget.ProgressBar
	statusLabel *widget.Label
	convertBtn  *widget.Button

	logLabel  *widget.Label
	logScroll *container.Scroll
	logBuffer strings.Builder
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	ui := &RootUI{
		window:   window,
		settings: config.NewSettings(app),
	}

	ui.setupUI()

	if !platform.ToolsAvailable() {
		dialog.ShowInformation("ffmpeg not found",
			fmt.Sprintf("%s not found on PATH.\n\nInstall ffmpeg and try again.",
				strings.Join(platform.MissingTools(), "/")),
			ui.window)
	}

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Input file list
	ui.fileList = widget.NewList(
		func() int { return len(ui.files) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(ui.files[id])
		},
	)

	addBtn := widget.NewButton(LabelAddFiles, ui.onAddFile)
	clearBtn := widget.NewButton(LabelClear, ui.onClearFiles)

	// Output directory row
	ui.outDirEntry = widget.NewEntry()
	ui.outDirEntry.SetText(ui.settings.GetOutputDirectory())
	ui.outDirEntry.OnChanged = ui.settings.SetOutputDirectory
	browseBtn := widget.NewButton(LabelBrowse, ui.onPickOutputDir)
	openBtn := widget.NewButton(LabelOpenFolder, ui.onOpenOutputDir)
	outRow := container.NewBorder(nil, nil, widget.NewLabel(LabelOutputFolder),
		container.NewHBox(browseBtn, openBtn), ui.outDirEntry)

	// Conversion options
	ui.profileSelect = widget.NewSelect(convert.ProfileNames(), ui.settings.SetQualityProfile)
	ui.profileSelect.SetSelected(ui.settings.GetQualityProfile())

	ui.customSpeedEntry = widget.NewEntry()
	ui.customSpeedEntry.SetText(ui.settings.GetCustomSpeed())
	ui.customSpeedEntry.OnChanged = ui.settings.SetCustomSpeed

	ui.speedSelect = widget.NewSelect(convert.SpeedPresets(), ui.onSpeedPresetChange)
	ui.speedSelect.SetSelected(ui.settings.GetSpeedPreset())

	ui.normalizeCheck = widget.NewCheck(LabelNormalize, ui.settings.SetNormalizeAudio)
	ui.normalizeCheck.SetChecked(ui.settings.GetNormalizeAudio())

	ui.overwriteCheck = widget.NewCheck(LabelOverwrite, ui.settings.SetOverwrite)
	ui.overwriteCheck.SetChecked(ui.settings.GetOverwrite())

	optionsRow := container.NewGridWithColumns(4,
		widget.NewLabel(LabelProfile), ui.profileSelect,
		widget.NewLabel(LabelSpeed), ui.speedSelect,
	)
	customRow := container.NewBorder(nil, nil, widget.NewLabel(LabelCustomSpeed), nil, ui.customSpeedEntry)
	checksRow := container.NewHBox(ui.normalizeCheck, ui.overwriteCheck)

	// Progress + action
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(StatusIdle)
	ui.convertBtn = widget.NewButton(LabelConvert, ui.onConvertClick)
	ui.convertBtn.Importance = widget.HighImportance
	actionRow := container.NewBorder(nil, nil, ui.statusLabel, ui.convertBtn)

	// Log view
	ui.logLabel = widget.NewLabel("")
	ui.logLabel.Wrapping = fyne.TextWrapWord
	ui.logScroll = container.NewVScroll(ui.logLabel)

	top := container.NewVBox(
		outRow,
		optionsRow,
		customRow,
		checksRow,
		container.NewHBox(addBtn, clearBtn),
	)
	bottom := container.NewVBox(ui.progressBar, actionRow)

	lists := container.NewVSplit(
		container.NewBorder(widget.NewLabel(LabelInputVideos), nil, nil, nil, ui.fileList),
		container.NewBorder(widget.NewLabel(LabelLog), nil, nil, nil, ui.logScroll),
	)

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, lists))
}

// onSpeedPresetChange enables the custom entry only for the custom preset
func (ui *RootUI) onSpeedPresetChange(preset string) {
	ui.settings.SetSpeedPreset(preset)
	if preset == convert.SpeedPresetCustom {
		ui.customSpeedEntry.Enable()
	} else {
		ui.customSpeedEntry.Disable()
	}
}

// onAddFile shows the file open dialog and appends the selection
func (ui *RootUI) onAddFile() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		path := reader.URI().Path()
		for _, existing := range ui.files {
			if existing == path {
				return
			}
		}
		ui.files = append(ui.files, path)
		ui.fileList.Refresh()
	}, ui.window)
	fileDialog.SetFilter(storage.NewExtensionFileFilter(VideoExtensions))
	fileDialog.Show()
}

// onClearFiles empties the input list
func (ui *RootUI) onClearFiles() {
	ui.files = nil
	ui.fileList.Refresh()
}

// onPickOutputDir shows the folder picker for the output directory
func (ui *RootUI) onPickOutputDir() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outDirEntry.SetText(uri.Path())
	}, ui.window)
}

// onOpenOutputDir reveals the output directory in the file manager
func (ui *RootUI) onOpenOutputDir() {
	if err := platform.OpenFolderInManager(ui.outDirEntry.Text); err != nil {
		log.Printf("Failed to open output folder: %v", err)
	}
}

// onConvertClick validates preconditions and starts the batch worker
func (ui *RootUI) onConvertClick() {
	if len(ui.files) == 0 {
		dialog.ShowInformation("No files", "Please add at least one video.", ui.window)
		return
	}
	if !platform.ToolsAvailable() {
		dialog.ShowError(fmt.Errorf("missing on PATH: %s",
			strings.Join(platform.MissingTools(), ", ")), ui.window)
		return
	}

	outDir := ui.outDirEntry.Text
	tasks := make([]model.ConversionTask, 0, len(ui.files))
	for _, f := range ui.files {
		tasks = append(tasks, model.NewTask(f, platform.SuggestOutputPath(f, outDir)))
	}

	opts := convert.Options{
		Profile:        convert.Profiles[ui.profileSelect.Selected],
		Speed:          convert.ParseSpeed(ui.speedSelect.Selected, ui.customSpeedEntry.Text),
		NormalizeAudio: ui.normalizeCheck.Checked,
		Overwrite:      ui.overwriteCheck.Checked,
	}

	ui.convertBtn.Disable()
	ui.progressBar.Max = float64(len(tasks))
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(StatusStarting)
	ui.logBuffer.Reset()
	ui.logLabel.SetText("")

	logs := make(chan string, LogQueueCapacity)
	runner := convert.NewRunner(convert.NewFFprobe(), convert.SystemExecutor{}, logs, ui.onProgress)

	// The closed log channel is the batch's completion signal; the
	// outcomes feed the final status summary
	results := make(chan []model.TaskOutcome, 1)
	go func() {
		results <- runner.Run(tasks, opts)
		close(logs)
	}()
	go ui.consumeLogs(logs, results)
}

// consumeLogs drains the runner's log queue into the log view, then
// renders the outcome summary and re-enables the convert button once
// the channel closes
func (ui *RootUI) consumeLogs(logs <-chan string, results <-chan []model.TaskOutcome) {
	for line := range logs {
		appended := line
		fyne.Do(func() { ui.appendLog(appended) })
	}

	summary := model.Summarize(<-results)
	fyne.Do(func() {
		ui.statusLabel.SetText(summary.String())
		ui.convertBtn.Enable()
	})
}

// onProgress receives runner progress on the worker goroutine
func (ui *RootUI) onProgress(p model.Progress) {
	fyne.Do(func() {
		ui.progressBar.Max = float64(p.Total)
		ui.progressBar.SetValue(float64(p.Completed))
		ui.statusLabel.SetText(p.Message)
	})
}

// appendLog adds one line to the log view and keeps it scrolled to the
// end. Lines accumulate in a builder so appending stays linear over a
// long batch log.
func (ui *RootUI) appendLog(line string) {
	ui.logBuffer.WriteString(line)
	ui.logBuffer.WriteByte('\n')
	ui.logLabel.SetText(ui.logBuffer.String())
	ui.logScroll.ScrollToBottom()
}
