package main

import (
	"log"
	"os"

	"fyne.io/fyne/v2/app"

	"github.com/CodeKokeshi/SteamTimer/internal/config"
	"github.com/CodeKokeshi/SteamTimer/internal/models"
	"github.com/CodeKokeshi/SteamTimer/internal/storage"
	"github.com/CodeKokeshi/SteamTimer/internal/ui"
)

func main() {
	flags, err := config.ParseFlags("steamtimer", os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	configManager, err := config.NewManager(flags.ConfigPath)
	if err != nil {
		log.Fatal(err)
	}

	cfg := configManager.GetConfig()
	cfg.ApplyFlags(flags)

	if err := ui.CheckDisplay(); err != nil {
		log.Fatal(err)
	}

	db, err := storage.NewDatabase(configManager.DatabasePath())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	offset := models.ComputeOffset(cfg.Timer.OffsetSeconds, cfg.Timer.OffsetHours)
	session := models.NewSession(models.RealClock{}, offset)

	myApp := app.New()

	mainWindow := ui.NewMainWindow(myApp, cfg, session, db)
	mainWindow.Show()
}
