package ui

import (
	"context"
	"errors"
	"fmt"
	"image"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/sirupsen/logrus"

	"github.com/ytget/yt-downloader/internal/config"
	"github.com/ytget/yt-downloader/internal/download"
	"github.com/ytget/yt-downloader/internal/model"
	"github.com/ytget/yt-downloader/internal/platform"
)

// state is owned by the UI goroutine. Workers never touch it; their results
// are applied through dispatch.
type state struct {
	fetchPhase    model.Phase
	downloadPhase model.Phase

	info      *model.VideoInfo // most recent metadata, nil until a fetch succeeds
	sourceURL string           // URL info was fetched from
	audioOnly bool             // mode the displayed list was built for
	thumbnail image.Image      // kept while displayed

	status     model.Status
	progress   float64
	completeIn string // output directory of the last successful download
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	workflow     download.Workflow
	log          *logrus.Logger

	ctx    context.Context
	cancel context.CancelFunc

	// spawn runs a worker off the UI goroutine, dispatch posts back onto it
	spawn    func(func())
	dispatch func(func())
	alert    func(title, message string)
	reveal   func(dir string) error

	st state

	urlLabel      *widget.Label
	urlEntry      *widget.Entry
	loadBtn       *widget.Button
	infoCard      *widget.Card
	thumbImage    *canvas.Image
	thumbLabel    *widget.Label
	infoText      *widget.Label
	optionsCard   *widget.Card
	formatLabel   *widget.Label
	formatSelect  *widget.Select
	audioCheck    *widget.Check
	saveToLabel   *widget.Label
	outputEntry   *widget.Entry
	browseBtn     *widget.Button
	downloadBtn   *widget.Button
	openFolderBtn *widget.Button
	progressBar   *widget.ProgressBar
	statusLabel   *widget.Label
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, workflow download.Workflow, log *logrus.Logger) *RootUI {
	if log == nil {
		log = logrus.StandardLogger()
	}

	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ctx, cancel := context.WithCancel(context.Background())

	ui := &RootUI{
		window:       window,
		settings:     settings,
		localization: localization,
		workflow:     workflow,
		log:          log,
		ctx:          ctx,
		cancel:       cancel,
		spawn:        func(f func()) { go f() },
		dispatch:     fyne.Do,
		reveal:       platform.RevealDirectory,
		st: state{
			fetchPhase:    model.PhaseIdle,
			downloadPhase: model.PhaseIdle,
			status:        model.Status{Kind: model.StatusReady},
		},
	}
	ui.alert = func(title, message string) {
		dialog.ShowInformation(title, message, ui.window)
	}

	// Closing the window kills in-flight yt-dlp processes
	window.SetOnClosed(cancel)

	// Set window title
	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create menu
	ui.createMenu()

	// URL row; Enter in the URL field loads info
	ui.urlLabel = widget.NewLabel("")
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onLoadInfo()
	}
	ui.loadBtn = widget.NewButton("", ui.onLoadInfo)
	ui.loadBtn.Importance = widget.HighImportance
	urlRow := container.NewBorder(nil, nil, ui.urlLabel, ui.loadBtn, ui.urlEntry)

	// Video information: thumbnail on the left, text on the right
	ui.thumbImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	ui.thumbImage.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
	ui.thumbImage.Hide()
	ui.thumbLabel = widget.NewLabel("")
	ui.thumbLabel.Alignment = fyne.TextAlignCenter
	ui.thumbLabel.Wrapping = fyne.TextWrapWord
	thumbBox := container.NewGridWrap(
		fyne.NewSize(ThumbnailWidth, ThumbnailHeight),
		container.NewStack(ui.thumbImage, container.NewCenter(ui.thumbLabel)),
	)

	ui.infoText = widget.NewLabel("")
	ui.infoText.Wrapping = fyne.TextWrapWord
	ui.infoCard = widget.NewCard("", "", container.NewBorder(nil, nil, thumbBox, nil, container.NewVScroll(ui.infoText)))

	// Download options
	ui.formatLabel = widget.NewLabel("")
	ui.formatSelect = widget.NewSelect(nil, nil)

	// Restore the toggle before wiring the handler so it does not fire
	ui.audioCheck = widget.NewCheck("", nil)
	ui.audioCheck.SetChecked(ui.settings.GetAudioOnly())
	ui.audioCheck.OnChanged = ui.onAudioToggle

	ui.saveToLabel = widget.NewLabel("")
	ui.outputEntry = widget.NewEntry()
	ui.outputEntry.SetText(ui.settings.GetDownloadDirectory())
	ui.browseBtn = widget.NewButton("", ui.onBrowse)

	options := container.New(layout.NewFormLayout(),
		ui.formatLabel, ui.formatSelect,
		layout.NewSpacer(), ui.audioCheck,
		ui.saveToLabel, container.NewBorder(nil, nil, nil, ui.browseBtn, ui.outputEntry),
	)
	ui.optionsCard = widget.NewCard("", "", options)

	// Actions, progress and status line
	ui.downloadBtn = widget.NewButton("", ui.onDownload)
	ui.downloadBtn.Importance = widget.HighImportance
	ui.openFolderBtn = widget.NewButton("", ui.onOpenFolder)
	actions := container.NewHBox(layout.NewSpacer(), ui.downloadBtn, ui.openFolderBtn, layout.NewSpacer())

	ui.progressBar = widget.NewProgressBar()
	ui.progressBar.Min = 0
	ui.progressBar.Max = 100
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	bottom := container.NewVBox(ui.optionsCard, actions, ui.progressBar, ui.statusLabel)
	content := container.NewBorder(urlRow, bottom, nil, nil, ui.infoCard)

	ui.refreshUITexts()
	ui.refreshControls()

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	ui.window.Canvas().Focus(ui.urlEntry)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for _, code := range []string{"en", "ru", "pt"} {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	// Update localization
	ui.localization.SetLanguage(langCode)

	// Save to settings
	ui.settings.SetLanguage(langCode)

	// Update UI texts
	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	t := ui.localization.GetText

	ui.window.SetTitle(t(KeyAppTitle))
	ui.urlLabel.SetText(t(KeyURLLabel))
	ui.urlEntry.SetPlaceHolder(t(KeyEnterURL))
	ui.loadBtn.SetText(t(KeyLoadInfo))
	ui.infoCard.SetTitle(t(KeyVideoInformation))
	ui.optionsCard.SetTitle(t(KeyDownloadOptions))
	ui.formatLabel.SetText(t(KeyFormat))
	ui.audioCheck.SetText(t(KeyAudioOnly))
	ui.saveToLabel.SetText(t(KeySaveTo))
	ui.browseBtn.SetText(t(KeyBrowse))
	ui.downloadBtn.SetText(t(KeyDownload))
	ui.openFolderBtn.SetText(t(KeyOpenFolder))

	ui.renderInfo()
	ui.renderThumbnail()
	ui.statusLabel.SetText(ui.statusText(ui.st.status))
}

// refreshControls derives button enablement from the busy phases
func (ui *RootUI) refreshControls() {
	fetching := ui.st.fetchPhase.IsBusy()
	downloading := ui.st.downloadPhase.IsBusy()

	setEnabled(ui.loadBtn, !fetching)
	setEnabled(ui.audioCheck, !fetching)
	setEnabled(ui.downloadBtn, ui.st.info != nil && !fetching && !downloading)
	setEnabled(ui.openFolderBtn, ui.st.completeIn != "" && !downloading)
}

type disableable interface {
	Enable()
	Disable()
}

func setEnabled(w disableable, enabled bool) {
	if enabled {
		w.Enable()
	} else {
		w.Disable()
	}
}

// SetURL pre-fills the URL entry
func (ui *RootUI) SetURL(url string) {
	ui.urlEntry.SetText(strings.TrimSpace(url))
}

// onLoadInfo handles the Load Info button and Enter in the URL entry
func (ui *RootUI) onLoadInfo() {
	if ui.st.fetchPhase.IsBusy() {
		return
	}

	url := strings.TrimSpace(ui.urlEntry.Text)
	if url == "" {
		ui.alert(ui.localization.GetText(KeyInputErrorTitle), ui.localization.GetText(KeyPleaseEnterURL))
		return
	}

	ui.startFetch(url, ui.audioCheck.Checked)
}

// onAudioToggle re-runs the whole fetch when metadata is loaded
func (ui *RootUI) onAudioToggle(checked bool) {
	ui.settings.SetAudioOnly(checked)

	if ui.st.info == nil || ui.st.fetchPhase.IsBusy() {
		return
	}
	ui.startFetch(ui.st.sourceURL, checked)
}

// startFetch moves to the fetching phase and spawns the fetch worker
func (ui *RootUI) startFetch(url string, audioOnly bool) {
	ui.st.fetchPhase = model.PhaseFetching
	ui.setStatus(model.Status{Kind: model.StatusLoadingInfo})
	ui.refreshControls()

	ui.spawn(func() {
		ui.fetchWorker(url, audioOnly)
	})
}

// fetchWorker runs off the UI goroutine
func (ui *RootUI) fetchWorker(url string, audioOnly bool) {
	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("unexpected error: %v", r)
			ui.log.WithField("panic", r).Error("Fetch worker panicked")
			ui.dispatch(func() { ui.applyFetchError(err) })
		}
	}()

	result, err := ui.workflow.Fetch(ui.ctx, url, audioOnly)
	if err != nil {
		ui.dispatch(func() { ui.applyFetchError(err) })
		return
	}
	ui.dispatch(func() { ui.applyFetchResult(result) })
}

// applyFetchResult replaces the displayed metadata in one pass
func (ui *RootUI) applyFetchResult(result *download.FetchResult) {
	ui.st.info = result.Info
	ui.st.sourceURL = result.URL
	ui.st.audioOnly = result.AudioOnly
	ui.st.thumbnail = result.Thumbnail

	ui.renderInfo()
	ui.renderThumbnail()

	ui.formatSelect.SetOptions(result.Entries)
	ui.formatSelect.SetSelectedIndex(0)

	ui.st.fetchPhase = model.PhaseIdle
	ui.setStatus(model.Status{Kind: model.StatusReadyToDownload})
	ui.refreshControls()
}

// applyFetchError surfaces the library message and clears whatever the form
// showed for the previous video. Download stays disabled.
func (ui *RootUI) applyFetchError(err error) {
	ui.st.fetchPhase = model.PhaseIdle
	ui.st.info = nil
	ui.st.thumbnail = nil

	ui.renderInfo()
	ui.renderThumbnail()
	ui.formatSelect.ClearSelected()
	ui.formatSelect.SetOptions(nil)

	ui.setStatus(model.Status{Kind: model.StatusError, Err: err.Error()})
	ui.refreshControls()
}

// onDownload validates synchronously; no worker is spawned on failure
func (ui *RootUI) onDownload() {
	if ui.st.downloadPhase.IsBusy() || ui.st.fetchPhase.IsBusy() {
		return
	}

	opts, err := ui.workflow.PrepareDownload(download.Request{
		Info:      ui.st.info,
		OutputDir: strings.TrimSpace(ui.outputEntry.Text),
		Selected:  ui.formatSelect.Selected,
		AudioOnly: ui.audioCheck.Checked,
	})
	if err != nil {
		ui.alert(ui.localization.GetText(KeyErrorTitle), ui.prepareErrorText(err))
		return
	}

	ui.settings.SetDownloadDirectory(opts.OutputDir)

	ui.st.downloadPhase = model.PhaseDownloading
	ui.st.completeIn = ""
	ui.setStatus(model.Status{Kind: model.StatusPreparing})
	ui.setProgress(0)
	ui.refreshControls()

	url := ui.st.sourceURL
	ui.spawn(func() {
		ui.downloadWorker(url, opts)
	})
}

func (ui *RootUI) prepareErrorText(err error) string {
	var dirErr *download.InvalidOutputDirectoryError
	switch {
	case errors.Is(err, download.ErrNoVideoInfo):
		return ui.localization.GetText(KeyNoVideoInfo)
	case errors.As(err, &dirErr):
		return ui.localization.GetText(KeyInvalidOutputDir)
	default:
		return err.Error()
	}
}

// downloadWorker runs off the UI goroutine. The workflow sets the terminal
// status through the sink; the worker only releases the phase.
func (ui *RootUI) downloadWorker(url string, opts download.Options) {
	defer func() {
		if r := recover(); r != nil {
			ui.log.WithField("panic", r).Error("Download worker panicked")
			msg := fmt.Sprintf("unexpected error: %v", r)
			ui.dispatch(func() {
				ui.setStatus(model.Status{Kind: model.StatusError, Err: msg})
				ui.finishDownload("")
			})
		}
	}()

	err := ui.workflow.Download(ui.ctx, url, opts, &dispatchSink{ui: ui})

	completeIn := ""
	if err == nil {
		completeIn = opts.OutputDir
	}
	ui.dispatch(func() { ui.finishDownload(completeIn) })
}

func (ui *RootUI) finishDownload(completeIn string) {
	ui.st.downloadPhase = model.PhaseIdle
	ui.st.completeIn = completeIn
	ui.refreshControls()
}

// onBrowse opens a folder dialog starting at the current output directory
func (ui *RootUI) onBrowse() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.outputEntry.SetText(uri.Path())
		ui.settings.SetDownloadDirectory(uri.Path())
	}, ui.window)

	if dir := strings.TrimSpace(ui.outputEntry.Text); dir != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(dir)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Show()
}

// onOpenFolder reveals the directory of the last completed download
func (ui *RootUI) onOpenFolder() {
	if ui.st.completeIn == "" {
		return
	}
	if err := ui.reveal(ui.st.completeIn); err != nil {
		ui.log.WithError(err).WithField("output_dir", ui.st.completeIn).Warn("Failed to reveal output directory")
		ui.alert(ui.localization.GetText(KeyErrorTitle), ui.localization.GetText(KeyErrorOpeningFolder)+": "+err.Error())
	}
}

func (ui *RootUI) setStatus(status model.Status) {
	ui.st.status = status
	ui.statusLabel.SetText(ui.statusText(status))
}

func (ui *RootUI) setProgress(percent float64) {
	ui.st.progress = percent
	ui.progressBar.SetValue(percent)
}

// renderInfo rebuilds the info text from the current metadata
func (ui *RootUI) renderInfo() {
	if ui.st.info == nil {
		ui.infoText.SetText("")
		return
	}
	ui.infoText.SetText(ui.st.info.Summary(ui.localization.SummaryLabels()))
}

// renderThumbnail swaps the preview image or its placeholder text
func (ui *RootUI) renderThumbnail() {
	if ui.st.thumbnail != nil {
		ui.thumbImage.Image = ui.st.thumbnail
		ui.thumbImage.Refresh()
		ui.thumbImage.Show()
		ui.thumbLabel.Hide()
		return
	}

	ui.thumbImage.Image = nil
	ui.thumbImage.Hide()
	if ui.st.info == nil {
		ui.thumbLabel.SetText(ui.localization.GetText(KeyThumbnailPlaceholder))
	} else {
		ui.thumbLabel.SetText(ui.localization.GetText(KeyNoThumbnail))
	}
	ui.thumbLabel.Show()
}

// statusText renders a status in the current language
func (ui *RootUI) statusText(status model.Status) string {
	t := ui.localization.GetText

	switch status.Kind {
	case model.StatusLoadingInfo:
		return t(KeyStatusLoadingInfo)
	case model.StatusReadyToDownload:
		return t(KeyStatusReadyToDownload)
	case model.StatusPreparing:
		return t(KeyStatusPreparing)
	case model.StatusDownloading:
		return t(KeyStatusDownloading)
	case model.StatusTransferring:
		eta := t(KeyETAUnknown)
		if status.ETASec >= 0 {
			eta = fmt.Sprintf(t(KeyETASeconds), status.ETASec)
		}
		return fmt.Sprintf(t(KeyStatusTransferring), status.SpeedMBps(), eta)
	case model.StatusProcessing:
		return t(KeyStatusProcessing)
	case model.StatusCompleted:
		return t(KeyStatusCompleted)
	case model.StatusError:
		return fmt.Sprintf(t(KeyStatusError), status.Err)
	case model.StatusTimeout:
		return t(KeyStatusTimeout)
	default:
		return t(KeyStatusReady)
	}
}

// dispatchSink forwards progress from the library goroutine to the UI goroutine
type dispatchSink struct {
	ui *RootUI
}

func (s *dispatchSink) SetProgress(percent float64) {
	s.ui.dispatch(func() { s.ui.setProgress(percent) })
}

func (s *dispatchSink) SetStatus(status model.Status) {
	s.ui.dispatch(func() { s.ui.setStatus(status) })
}
