// Package drive adapts the Google Drive v3 REST API to the docstore
// contracts: paged PDF listing under a folder and media download with
// PDF-to-text conversion.
package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/RichieRish05/ProRankAI/constants"
	"github.com/RichieRish05/ProRankAI/internal/docstore"
	"github.com/RichieRish05/ProRankAI/internal/entity"
)

type Config struct {
	BaseURL     string
	AccessToken string
	// PDFToText is the pdftotext-compatible binary used to convert
	// downloaded media to plain text.
	PDFToText string
	Timeout   time.Duration
}

type Client struct {
	cfg    Config
	http   *http.Client
	runner docstore.Runner
	log    *slog.Logger
}

func NewClient(cfg Config, runner docstore.Runner, log *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.googleapis.com/drive/v3"
	}
	if cfg.PDFToText == "" {
		cfg.PDFToText = "pdftotext"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if runner == nil {
		runner = docstore.NewExecRunner()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		runner: runner,
		log:    log,
	}
}

type fileList struct {
	Files []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"files"`
	NextPageToken string `json:"nextPageToken"`
}

// List enumerates the non-trashed PDFs directly under the folder,
// following page tokens until the listing is exhausted.
func (c *Client) List(ctx context.Context, sourceRef string) ([]entity.DocumentRef, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false", sourceRef, constants.PDFMimeType)

	var docs []entity.DocumentRef
	pageToken := ""
	for {
		params := url.Values{}
		params.Set("q", query)
		params.Set("spaces", "drive")
		params.Set("fields", "nextPageToken, files(id, name)")
		if pageToken != "" {
			params.Set("pageToken", pageToken)
		}

		raw, err := c.get(ctx, c.cfg.BaseURL+"/files?"+params.Encode())
		if err != nil {
			return nil, fmt.Errorf("list folder %s: %w", sourceRef, err)
		}
		var page fileList
		if err := json.Unmarshal(raw, &page); err != nil {
			return nil, fmt.Errorf("decode file list: %w", err)
		}
		for _, f := range page.Files {
			docs = append(docs, entity.DocumentRef{
				ID:         f.ID,
				Name:       f.Name,
				ViewURL:    fmt.Sprintf("https://drive.google.com/file/d/%s/view", f.ID),
				PreviewURL: fmt.Sprintf("https://drive.google.com/file/d/%s/preview", f.ID),
			})
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	c.log.Info("drive.list.ok", "source_ref", sourceRef, "documents", len(docs))
	return docs, nil
}

// FetchText downloads the document media and converts it to UTF-8 text.
func (c *Client) FetchText(ctx context.Context, docRef string) (string, error) {
	raw, err := c.get(ctx, c.cfg.BaseURL+"/files/"+url.PathEscape(docRef)+"?alt=media")
	if err != nil {
		return "", fmt.Errorf("download %s: %w", docRef, err)
	}

	tmp := filepath.Join(os.TempDir(), "prorank-"+uuid.New().String()+".pdf")
	if err := os.WriteFile(tmp, raw, 0o600); err != nil {
		return "", fmt.Errorf("spool %s: %w", docRef, err)
	}
	defer os.Remove(tmp)

	// "-" sends the extracted text to stdout
	stdout, _, err := c.runner.Run(ctx, c.cfg.PDFToText, "-enc", "UTF-8", tmp, "-")
	if err != nil {
		return "", fmt.Errorf("pdf to text %s: %w", docRef, err)
	}
	text := strings.TrimSpace(string(stdout))
	c.log.Debug("drive.fetch.ok", "doc_ref", docRef, "pdf_bytes", len(raw), "text_bytes", len(text))
	return text, nil
}

func (c *Client) get(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if c.cfg.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)
	if resp.StatusCode/100 != 2 {
		return raw, fmt.Errorf("non-2xx status: %d", resp.StatusCode)
	}
	return raw, nil
}
