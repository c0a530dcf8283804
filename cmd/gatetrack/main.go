package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/mwidmann/gatetrack/internal/cli"
	"github.com/mwidmann/gatetrack/internal/db"
	"github.com/mwidmann/gatetrack/internal/service"
	"github.com/mwidmann/gatetrack/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Data path: env var or default ~/.gatetrack/projects.json
	dataPath := os.Getenv("GATETRACK_DATA")
	if dataPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dataPath = filepath.Join(home, ".gatetrack", "projects.json")
	}

	// The relational archive lives next to the JSON data unless overridden.
	archivePath := os.Getenv("GATETRACK_ARCHIVE")
	if archivePath == "" {
		archivePath = filepath.Join(filepath.Dir(dataPath), "archive.db")
	}

	fileStore := store.NewFileStore(dataPath)

	// Daily startup backup of the JSON data, before any command touches it.
	backupPath, err := fileStore.Backup()
	if err != nil {
		return fmt.Errorf("backing up data: %w", err)
	}
	if backupPath != "" && isatty.IsTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "Backed up data to %s\n", backupPath)
	}

	database, err := db.Open(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if os.Getenv("GATETRACK_LOG") != "" {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Projects: service.NewProjectService(fileStore),
		Gateways: service.NewGatewayService(fileStore),
		Import:   service.NewImportService(fileStore, observers...),
		Status:   service.NewStatusService(fileStore),
		Archive:  service.NewArchiveService(fileStore, uow, observers...),
	}

	return cli.NewRootCmd(app).Execute()
}
