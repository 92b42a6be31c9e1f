package ui

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/CodeKokeshi/SteamTimer/internal/config"
	"github.com/CodeKokeshi/SteamTimer/internal/models"
	"github.com/CodeKokeshi/SteamTimer/internal/storage"
)

var (
	backgroundColor = color.NRGBA{R: 18, G: 18, B: 20, A: 255}
	captionColor    = color.NRGBA{R: 139, G: 145, B: 153, A: 255}
	numberColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

type MainWindow struct {
	window  fyne.Window
	session *models.Session
	db      *storage.Database
	cfg     *config.Config

	dayLabel    *canvas.Text
	hourLabel   *canvas.Text
	minuteLabel *canvas.Text
	secondLabel *canvas.Text

	pulse *Pulse
	chime *Chime
	stop  chan struct{}
}

func NewMainWindow(app fyne.App, cfg *config.Config, session *models.Session, db *storage.Database) *MainWindow {
	w := &MainWindow{
		window:  app.NewWindow(cfg.App.Name),
		session: session,
		db:      db,
		cfg:     cfg,
		chime:   NewChime(cfg.Theme.Sound),
		stop:    make(chan struct{}),
	}
	w.setup()
	return w
}

func (w *MainWindow) setup() {
	compact := w.cfg.Timer.Compact

	numbers := []*canvas.Text{}
	units := []fyne.CanvasObject{}
	for _, caption := range []string{"DAYS", "HOURS", "MINUTES", "SECONDS"} {
		unit, number := makeUnit(caption, compact)
		units = append(units, unit)
		numbers = append(numbers, number)
	}
	w.dayLabel, w.hourLabel, w.minuteLabel, w.secondLabel = numbers[0], numbers[1], numbers[2], numbers[3]

	unitsRow := container.NewGridWithColumns(4, units...)

	resetBtn := widget.NewButtonWithIcon("Reset (R)", theme.MediaReplayIcon(), w.confirmReset)
	resetBtn.Importance = widget.HighImportance

	aboutBtn := widget.NewButtonWithIcon("About", theme.InfoIcon(), w.showAbout)
	aboutBtn.Importance = widget.MediumImportance

	buttons := container.NewHBox(resetBtn, aboutBtn)

	content := container.NewVBox(
		container.NewPadded(unitsRow),
		container.NewCenter(buttons),
	)

	background := canvas.NewRectangle(backgroundColor)

	w.window.SetContent(container.NewMax(
		background,
		container.NewPadded(content),
	))

	if w.cfg.Theme.AccentPulse {
		interval := time.Duration(w.cfg.Theme.PulseIntervalMs) * time.Millisecond
		w.pulse = NewPulse(numbers, interval)
	}

	// R anywhere in the window triggers the reset confirmation.
	w.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyR {
			w.confirmReset()
		}
	})

	w.window.SetCloseIntercept(w.shutdown)

	width, height := float32(w.cfg.App.WindowWidth), float32(w.cfg.App.WindowHeight)
	if compact {
		width, height = 400, 180
	}
	w.window.Resize(fyne.NewSize(width, height))

	w.refresh()
}

func makeUnit(caption string, compact bool) (fyne.CanvasObject, *canvas.Text) {
	captionSize := float32(11)
	numberSize := float32(50)
	if compact {
		captionSize = 10
		numberSize = 38
	}

	title := canvas.NewText(caption, captionColor)
	title.TextSize = captionSize
	title.Alignment = fyne.TextAlignCenter

	number := canvas.NewText("00", numberColor)
	number.TextSize = numberSize
	number.TextStyle = fyne.TextStyle{Bold: true}
	number.Alignment = fyne.TextAlignCenter

	return container.NewVBox(title, number), number
}

func (w *MainWindow) SetSize(width, height float32) {
	w.window.Resize(fyne.NewSize(width, height))
}

// refresh pushes the current breakdown to the four readouts and the window
// title. Called once per tick and immediately after a confirmed reset.
func (w *MainWindow) refresh() {
	b := w.session.Snapshot()

	w.dayLabel.Text = fmt.Sprintf("%02d", b.Days)
	w.hourLabel.Text = fmt.Sprintf("%02d", b.Hours)
	w.minuteLabel.Text = fmt.Sprintf("%02d", b.Minutes)
	w.secondLabel.Text = fmt.Sprintf("%02d", b.Seconds)

	w.dayLabel.Refresh()
	w.hourLabel.Refresh()
	w.minuteLabel.Refresh()
	w.secondLabel.Refresh()

	w.window.SetTitle(fmt.Sprintf("%s  |  %s", w.cfg.App.Name, b.Format()))
}

func (w *MainWindow) run() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.refresh()
		}
	}
}

func (w *MainWindow) confirmReset() {
	dialog.ShowConfirm(
		"Reset Timer",
		"Reset elapsed time to 0? This doesn't affect any stored data.",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			w.doReset()
		},
		w.window,
	)
}

func (w *MainWindow) doReset() {
	span := w.session.Reset()
	if err := w.db.SaveSpan(span); err != nil {
		log.Printf("Error saving session record: %v", err)
	}
	w.chime.Play()
	w.refresh()
}

func (w *MainWindow) showAbout() {
	total := "no sessions recorded yet"
	if stats, err := w.db.GetSessionStats(); err == nil && stats.TotalSessions > 0 {
		total = fmt.Sprintf("%d sessions recorded, %s accumulated",
			stats.TotalSessions, models.Split(stats.TotalSeconds).Format())
	}

	dialog.ShowInformation(
		"About",
		fmt.Sprintf(
			"%s\n\n"+
				"A lightweight placeholder you can run instead of a game so the\n"+
				"platform keeps counting playtime. Displays an on-going\n"+
				"DD:HH:MM:SS timer.\n\n"+
				"No networking, no injection, no data collection.\n"+
				"Please respect platform Terms of Service.\n\n"+
				"History: %s.",
			w.cfg.App.Name, total,
		),
		w.window,
	)
}

// shutdown records the final span and stops the tickers before the window
// closes for good.
func (w *MainWindow) shutdown() {
	close(w.stop)
	if w.pulse != nil {
		w.pulse.Stop()
	}

	span := w.session.Reset()
	if span.Seconds > 0 {
		if err := w.db.SaveSpan(span); err != nil {
			log.Printf("Error saving session record: %v", err)
		}
	}

	w.window.Close()
}

// Show starts the periodic refresh and runs the window's event loop. It
// blocks until the window closes.
func (w *MainWindow) Show() {
	go w.run()
	if w.pulse != nil {
		w.pulse.Start()
	}
	w.window.ShowAndRun()
}
