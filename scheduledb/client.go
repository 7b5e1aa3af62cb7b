package scheduledb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"
)

// Client is the main entry point for the schedule database.
type Client struct {
	config        Config
	DB            *sql.DB
	Queries       *Queries
	importRuntime time.Duration
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config) (*Client, error) {
	db, err := InitDB(config)
	if err != nil {
		return nil, fmt.Errorf("error creating schedule database: %w", err)
	}
	if config.verbose {
		log.Println("Successfully created tables")
	}

	client := &Client{
		config:  config,
		DB:      db,
		Queries: New(db),
	}
	return client, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// DownloadAndStoreGTFS downloads a static GTFS zip from the given URL and
// stores the schedule it describes in the database.
func (c *Client) DownloadAndStoreGTFS(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() // nolint

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	return c.ImportGTFS(ctx, b)
}

// ImportGTFSFromFile imports a static GTFS zip from a local file.
func (c *Client) ImportGTFSFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return c.ImportGTFS(ctx, data)
}

func (c *Client) trackImportRuntime(startTime time.Time) {
	c.importRuntime = time.Since(startTime)
	if c.config.verbose {
		log.Println("Importing schedule data took", c.importRuntime.String())
	}
}
