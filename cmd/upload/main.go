// Command upload documents items from local photos: it stages the files in
// object storage, then calls the backend's analysis endpoint with the
// uploaded URLs and prints the created items.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/smartonix/inventory-backend/internal/adapter/objectstore"
	"github.com/smartonix/inventory-backend/internal/apiclient"
	"github.com/smartonix/inventory-backend/internal/app"
	"github.com/smartonix/inventory-backend/internal/auth"
	"github.com/smartonix/inventory-backend/internal/config"
	"github.com/smartonix/inventory-backend/internal/uploader"
)

func main() {
	var (
		apiURL = flag.String("api", "http://localhost:8080", "backend base URL")
		token  = flag.String("token", "", "bearer token (required)")
	)
	flag.Parse()

	if *token == "" || flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "usage: upload -token <jwt> [-api <url>] photo.jpg [photo2.jpg ...]\n")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	userID, err := subjectFromToken(cfg.Auth, *token)
	if err != nil {
		logger.Error("invalid token", slog.String("error", err.Error()))
		os.Exit(1)
	}

	files, err := readFiles(flag.Args())
	if err != nil {
		logger.Error("read files", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	store := objectstore.New(cfg.Storage)
	analyzer := apiclient.New(*apiURL, *token, cfg.Extractor.Timeout)
	session := uploader.NewSession(store, analyzer, userID, logger)

	urls, err := session.Upload(ctx, files)
	if err != nil {
		logger.Error("upload failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("photos staged", slog.Int("count", len(urls)))

	items, err := session.Analyze(ctx)
	if err != nil {
		logger.Error("analysis failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, item := range items {
		value := 0.0
		if item.EstimatedValue != nil {
			value = *item.EstimatedValue
		}
		fmt.Printf("%s\t%s\t$%.2f\n", item.ID, item.Name, value)
	}
	logger.Info("items documented", slog.Int("count", len(items)))
}

func subjectFromToken(cfg config.AuthConfig, token string) (uuid.UUID, error) {
	verifier := auth.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	return verifier.ValidateToken(context.Background(), token)
}

func readFiles(paths []string) ([]uploader.File, error) {
	files := make([]uploader.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}

		contentType := mime.TypeByExtension(filepath.Ext(p))
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		files = append(files, uploader.File{
			Name:        filepath.Base(p),
			ContentType: contentType,
			Data:        data,
		})
	}
	return files, nil
}
