// Package local adapts a local folder to the docstore contracts so the
// batch binary can screen a directory of resumes without any external
// store.
package local

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/docstore"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

type Store struct {
	pdfToText string
	runner    docstore.Runner
	log       *slog.Logger
}

func NewStore(pdfToText string, runner docstore.Runner, log *slog.Logger) *Store {
	if pdfToText == "" {
		pdfToText = "pdftotext"
	}
	if runner == nil {
		runner = docstore.NewExecRunner()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Store{pdfToText: pdfToText, runner: runner, log: log}
}

// List walks the folder, skipping hidden entries and anything without an
// eligible extension. The document ref is the absolute file path.
func (s *Store) List(ctx context.Context, sourceRef string) ([]entity.DocumentRef, error) {
	root := strings.TrimSpace(sourceRef)
	if root == "" {
		return nil, fmt.Errorf("source folder is required")
	}

	var docs []entity.DocumentRef
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() && path != root {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := constants.AllowedExtensions[ext]; !ok {
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}
		docs = append(docs, entity.DocumentRef{ID: abs, Name: d.Name()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}
	s.log.Info("local.list.ok", "source_ref", root, "documents", len(docs))
	return docs, nil
}

// FetchText reads text files directly and converts PDFs through the
// runner.
func (s *Store) FetchText(ctx context.Context, docRef string) (string, error) {
	switch constants.NormalizeExt(filepath.Ext(docRef)) {
	case "txt":
		raw, err := os.ReadFile(docRef)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", docRef, err)
		}
		return strings.TrimSpace(string(raw)), nil
	case "pdf":
		stdout, _, err := s.runner.Run(ctx, s.pdfToText, "-enc", "UTF-8", docRef, "-")
		if err != nil {
			return "", fmt.Errorf("pdf to text %s: %w", docRef, err)
		}
		return strings.TrimSpace(string(stdout)), nil
	default:
		return "", fmt.Errorf("unsupported document type: %s", docRef)
	}
}
