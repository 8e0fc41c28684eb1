package ui

import (
	"fmt"
	"image/color"
	"log"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"slideshow/models"
	"slideshow/monitor"
	"slideshow/playlist"
	"slideshow/scanner"
	"slideshow/storage"
)

// SlideshowWindow represents the main application window
type SlideshowWindow struct {
	app      fyne.App
	window   fyne.Window
	storage  *storage.Manager
	config   *models.Config
	scanner  *scanner.Scanner
	playlist *playlist.Playlist
	monitor  *monitor.FolderMonitor
	viewer   *Viewer
	slides   *slideTimer

	scanMutex   sync.Mutex
	pendingScan string

	clockStop chan struct{}
	closeOnce sync.Once
}

// NewSlideshowWindow creates the slideshow window
func NewSlideshowWindow(store *storage.Manager) *SlideshowWindow {
	myApp := app.New()

	window := myApp.NewWindow("Slideshow")
	window.SetPadded(false)

	sw := &SlideshowWindow{
		app:       myApp,
		window:    window,
		storage:   store,
		scanner:   scanner.NewScanner(),
		playlist:  playlist.New(),
		clockStop: make(chan struct{}),
	}

	sw.loadConfig()
	sw.slides = newSlideTimer(time.Duration(sw.config.Interval)*time.Second, sw.nextImage)
	sw.setupUI()
	sw.startClockTimer()

	sw.monitor = monitor.NewFolderMonitor(
		sw.config.Folder,
		sw.config.Recursive,
		time.Duration(sw.config.RescanInterval)*time.Second,
		sw.startScan,
	)
	sw.monitor.Start()
	sw.startScan()

	return sw
}

// ShowAndRun shows the window and runs the application
func (sw *SlideshowWindow) ShowAndRun() {
	sw.window.ShowAndRun()
}

// loadConfig loads the configuration from storage
func (sw *SlideshowWindow) loadConfig() {
	var err error

	sw.config, err = sw.storage.LoadConfig()
	if err != nil {
		log.Printf("cannot load config: %v", err)
		sw.config = models.DefaultConfig()
	}

	sw.playlist.SetShuffled(sw.config.Random)
}

// setupUI sets up the user interface
func (sw *SlideshowWindow) setupUI() {
	if sw.config.FontPath != "" {
		sw.app.Settings().SetTheme(newSlideshowTheme(sw.config.FontPath))
	}

	infoColor := parseHexColorOr(sw.config.InfoColor, color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
	background := parseHexColorOr(sw.config.BackgroundColor, color.NRGBA{A: 0xFF})

	sw.viewer = NewViewer(sw.config.ScaleMode, float32(sw.config.FontSize), infoColor, background)
	sw.viewer.SetShowInfo(sw.config.ShowInfo)
	sw.viewer.SetShowClock(sw.config.ShowClock)

	sw.window.SetContent(sw.viewer)
	sw.window.SetFullScreen(sw.config.Fullscreen)
	if !sw.config.Fullscreen {
		sw.window.Resize(fyne.NewSize(1024, 768))
	}

	sw.window.Canvas().SetOnTypedKey(sw.handleKey)
	sw.window.SetOnClosed(sw.shutdown)
}

// handleKey dispatches the fixed keyboard bindings. Manual navigation
// restarts the slide countdown so the show does not advance again a moment
// later.
func (sw *SlideshowWindow) handleKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeyEscape, fyne.KeyQ, fyne.KeyX:
		sw.window.Close()
	case fyne.KeySpace, fyne.KeyRight:
		sw.nextImage()
		sw.slides.Restart()
	case fyne.KeyLeft:
		sw.prevImage()
		sw.slides.Restart()
	case fyne.KeyR:
		sw.toggleShuffle()
	case fyne.KeyF:
		sw.toggleFullscreen()
	case fyne.KeyI:
		sw.toggleInfo()
	case fyne.KeyC:
		sw.toggleClock()
	case fyne.KeyM:
		sw.toggleCursor()
	case fyne.KeyS:
		sw.startScan()
	case fyne.KeyZ:
		sw.cycleScaleMode()
	case fyne.KeyP:
		sw.togglePause()
	}
}

// startScan launches a folder scan in the background. Results of a scan that
// has been superseded by a newer one are thrown away.
func (sw *SlideshowWindow) startScan() {
	sw.scanMutex.Lock()
	sw.pendingScan = sw.scanner.ScanAsync(
		sw.config.Folder,
		sw.config.Extensions,
		sw.config.Recursive,
		sw.onScanComplete,
	)
	sw.scanMutex.Unlock()
}

// onScanComplete swaps the fresh image set into the playlist
func (sw *SlideshowWindow) onScanComplete(result scanner.Result) {
	sw.scanMutex.Lock()
	stale := result.ID != sw.pendingScan
	sw.scanMutex.Unlock()
	if stale {
		return
	}

	hadImages := sw.playlist.Len() > 0
	sw.playlist.Replace(result.Images)

	if sw.playlist.Len() == 0 {
		log.Printf("no images found in %q, waiting for next scan", sw.config.Folder)
		sw.viewer.ClearImage()
		sw.viewer.SetInfo("no images found, waiting for next scan...")
		sw.slides.Stop()
		return
	}

	log.Printf("found %d images", sw.playlist.Len())

	if !hadImages {
		sw.showCurrentImage()
		sw.slides.Restart()
	} else {
		// Keep the slide position, just refresh the overlay counts
		sw.showCurrentImage()
	}
}

// showCurrentImage displays the playlist's current image. Unreadable files
// are skipped; after a full unsuccessful lap the viewer shows a message
// instead of looping forever.
func (sw *SlideshowWindow) showCurrentImage() {
	for attempts := sw.playlist.Len(); attempts > 0; attempts-- {
		path, ok := sw.playlist.Current()
		if !ok {
			return
		}

		if err := sw.viewer.SetImage(path); err != nil {
			log.Printf("skipping unreadable image: %v", err)
			sw.playlist.Next()
			continue
		}

		sw.updateInfo(path)
		return
	}

	sw.viewer.ClearImage()
	sw.viewer.SetInfo("no readable images, waiting for next scan...")
}

// updateInfo refreshes the bottom-left overlay for the given image. The
// scale mode is read through the viewer so the timer goroutine never touches
// config fields the key handler may be writing.
func (sw *SlideshowWindow) updateInfo(path string) {
	index, total := sw.playlist.Position()
	sw.viewer.SetInfo(formatInfo(path, index, total, sw.playlist.Shuffled(), sw.viewer.ScaleMode(), sw.config.Interval))
}

// formatInfo builds the overlay line: name, position, order mode, scale mode
// and slide interval.
func formatInfo(path string, index, total int, shuffled bool, scaleMode string, interval int) string {
	order := "O"
	if shuffled {
		order = "R"
	}
	return fmt.Sprintf("%s | %d/%d | %s | %s | %ds",
		filepath.Base(path), index+1, total, order, strings.ToUpper(scaleMode), interval)
}

// nextImage advances to the next image
func (sw *SlideshowWindow) nextImage() {
	if _, ok := sw.playlist.Next(); !ok {
		return
	}
	sw.showCurrentImage()
}

// prevImage retreats to the previous image
func (sw *SlideshowWindow) prevImage() {
	if _, ok := sw.playlist.Prev(); !ok {
		return
	}
	sw.showCurrentImage()
}

// toggleShuffle switches between shuffled and sorted playback and persists
// the choice
func (sw *SlideshowWindow) toggleShuffle() {
	sw.config.Random = sw.playlist.ToggleShuffled()
	sw.saveConfig()
	sw.showCurrentImage()
}

// toggleFullscreen switches between fullscreen and windowed mode. The
// configured startup mode is left untouched.
func (sw *SlideshowWindow) toggleFullscreen() {
	sw.window.SetFullScreen(!sw.window.FullScreen())
}

// toggleInfo toggles the info overlay and persists the choice
func (sw *SlideshowWindow) toggleInfo() {
	sw.config.ShowInfo = !sw.config.ShowInfo
	sw.viewer.SetShowInfo(sw.config.ShowInfo)
	sw.saveConfig()
}

// toggleClock toggles the clock overlay and persists the choice
func (sw *SlideshowWindow) toggleClock() {
	sw.config.ShowClock = !sw.config.ShowClock
	sw.viewer.SetShowClock(sw.config.ShowClock)
	sw.saveConfig()
}

// toggleCursor toggles pointer visibility over the viewer
func (sw *SlideshowWindow) toggleCursor() {
	sw.viewer.SetCursorHidden(!sw.viewer.CursorHidden())
}

// cycleScaleMode advances fit -> fill -> stretch and persists the choice
func (sw *SlideshowWindow) cycleScaleMode() {
	mode := models.NextScaleMode(sw.viewer.ScaleMode())
	sw.viewer.SetScaleMode(mode)
	sw.config.ScaleMode = mode
	sw.saveConfig()

	if path, ok := sw.playlist.Current(); ok {
		sw.updateInfo(path)
	}
}

// togglePause stops or resumes the slide timer
func (sw *SlideshowWindow) togglePause() {
	if sw.slides.TogglePause() {
		log.Println("slideshow paused")
	} else {
		log.Println("slideshow resumed")
	}
}

// startClockTimer keeps the clock overlay current
func (sw *SlideshowWindow) startClockTimer() {
	sw.viewer.SetClock(time.Now().Format("15:04"))

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()

		for {
			select {
			case now := <-ticker.C:
				sw.viewer.SetClock(now.Format("15:04"))
			case <-sw.clockStop:
				return
			}
		}
	}()
}

// saveConfig persists the configuration
func (sw *SlideshowWindow) saveConfig() {
	if err := sw.storage.SaveConfig(sw.config); err != nil {
		log.Printf("cannot save config: %v", err)
	}
}

// shutdown stops all timers and background work
func (sw *SlideshowWindow) shutdown() {
	sw.closeOnce.Do(func() {
		sw.slides.Stop()
		close(sw.clockStop)
		if sw.monitor != nil {
			sw.monitor.Stop()
		}
	})
}
