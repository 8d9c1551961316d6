package services

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/activityboard/activityboard/activityboard/config"
	"github.com/activityboard/activityboard/activityboard/utils"
	"github.com/activityboard/activityboard/internal/domain/leaderboard"
	"github.com/chromedp/chromedp"
)

//go:embed templates/scoreboard.html
var scoreboardTemplate string

var scoreboardTmpl = template.Must(template.New("scoreboard").Parse(scoreboardTemplate))

// ErrImagesUnavailable is returned by Render after a failed Probe
var ErrImagesUnavailable = errors.New("scoreboard images are unavailable")

// ScoreboardImageService renders a leaderboard's score as a PNG with a
// headless browser
type ScoreboardImageService struct {
	logger      *slog.Logger
	now         func() time.Time
	unavailable atomic.Bool
}

type scoreboardRow struct {
	Rank  string
	Name  string
	Score string
}

type scoreboardData struct {
	Title        string
	Participants int
	Timestamp    string
	Rows         []scoreboardRow
}

func NewScoreboardImageService() *ScoreboardImageService {
	return &ScoreboardImageService{
		logger: slog.With(slog.String("service", "scoreboard_image")),
		now:    time.Now,
	}
}

// Probe checks that a browser can be started. After a failure Render refuses
// work and score replies are sent as text.
func (s *ScoreboardImageService) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, config.NetworkDialTimeout)
	defer cancel()

	chromedpCtx, cancel := chromedp.NewContext(ctx)
	defer cancel()

	if err := chromedp.Run(chromedpCtx, chromedp.Navigate("about:blank")); err != nil {
		s.unavailable.Store(true)
		s.logger.Warn("chromedp not available, scoreboard images disabled",
			slog.String("type", "sys"),
			slog.Any("error", err))
		return
	}
	s.unavailable.Store(false)
	s.logger.Info("chromedp is available", slog.String("type", "sys"))
}

// Available is false once a Probe has failed
func (s *ScoreboardImageService) Available() bool {
	return !s.unavailable.Load()
}

func (s *ScoreboardImageService) Render(ctx context.Context, title string, entries []leaderboard.ScoreEntry) ([]byte, error) {
	if !s.Available() {
		return nil, ErrImagesUnavailable
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no score entries to render")
	}
	start := time.Now()

	htmlContent, err := s.generateHTML(title, entries)
	if err != nil {
		return nil, err
	}

	chromedpCtx, cancel := chromedp.NewContext(ctx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	chromedpCtx, cancel = context.WithTimeout(chromedpCtx, config.ImageRenderTimeout)
	defer cancel()

	var imageBytes []byte
	err = chromedp.Run(chromedpCtx,
		chromedp.Navigate("data:text/html;charset=utf-8,"+url.PathEscape(htmlContent)),
		chromedp.WaitVisible("#scoreboard-container", chromedp.ByID),
		chromedp.Screenshot("#scoreboard-container", &imageBytes, chromedp.ByID),
	)
	if err != nil {
		s.logger.Error("Failed to render scoreboard image",
			slog.Any("error", err),
			slog.Duration("took", time.Since(start)))
		return nil, fmt.Errorf("failed to render scoreboard image: %w", err)
	}

	s.logger.Debug("Scoreboard image rendered",
		slog.String("title", title),
		slog.Int("image_size", len(imageBytes)),
		slog.Duration("took", time.Since(start)))
	return imageBytes, nil
}

func (s *ScoreboardImageService) generateHTML(title string, entries []leaderboard.ScoreEntry) (string, error) {
	data := scoreboardData{
		Title:        title,
		Participants: len(entries),
		Timestamp:    s.now().UTC().Format("Jan 2, 15:04 MST"),
	}

	shown := entries[:min(len(entries), config.ScoreImageRows)]
	for i, entry := range shown {
		data.Rows = append(data.Rows, scoreboardRow{
			Rank:  utils.Rank(i),
			Name:  entry.Name,
			Score: utils.FormatNumber(entry.Score),
		})
	}

	var buf bytes.Buffer
	if err := scoreboardTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute scoreboard template: %w", err)
	}
	return buf.String(), nil
}
