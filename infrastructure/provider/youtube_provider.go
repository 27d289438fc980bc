package provider

import (
	"YT_watchtime/internal/core/domain"
	"YT_watchtime/internal/core/ports"
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"google.golang.org/api/googleapi/transport"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const defaultTimeout = 30 * time.Second

type Config struct {
	APIKey  string
	Timeout time.Duration
	// Endpoint replaces the API root (scheme and host, e.g. "http://127.0.0.1:9000/");
	// requests still go to <Endpoint>youtube/v3/...
	Endpoint string
	// Transport is the base round tripper; http.DefaultTransport when nil.
	Transport http.RoundTripper
}

type youtubeProvider struct {
	cfg     Config
	log     ports.LoggerPort
	service *youtube.Service
	mu      sync.Mutex
}

func NewYoutubeProvider(cfg Config, logger ports.LoggerPort) (ports.VideoPort, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("youtube api key is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &youtubeProvider{
		cfg: cfg,
		log: logger,
	}, nil
}

func (s *youtubeProvider) getYoutubeService(ctx context.Context) (*youtube.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.service != nil {
		return s.service, nil
	}

	base := s.cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	// a chave vai na query string (key=...), sem OAuth
	httpClient := &http.Client{
		Timeout:   s.cfg.Timeout,
		Transport: &transport.APIKey{Key: s.cfg.APIKey, Transport: base},
	}

	service, err := youtube.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		s.log.Error("error while create youtube service", err)
		return nil, errors.Wrap(err, "error while create youtube service")
	}

	if s.cfg.Endpoint != "" {
		service.BasePath = strings.TrimSuffix(s.cfg.Endpoint, "/") + "/"
	}

	s.service = service
	s.log.Info("Create youtube service completed")

	return service, nil
}

func (s *youtubeProvider) ListVideoDurations(ctx context.Context, ids []string) ([]domain.VideoDuration, error) {
	if len(ids) == 0 {
		return []domain.VideoDuration{}, nil
	}
	if len(ids) > domain.MaxBatchSize {
		return nil, errors.Newf("batch of %d ids exceeds the limit of %d", len(ids), domain.MaxBatchSize)
	}

	service, err := s.getYoutubeService(ctx)
	if err != nil {
		return nil, errors.Mark(err, domain.ErrProvider)
	}

	//preparando chamada para a api do YouTube
	call := service.Videos.List([]string{"contentDetails"}).Id(ids...).Context(ctx)

	response, err := call.Do()
	if err != nil {
		s.log.Error("error while call youtube service", err)
		return nil, errors.Mark(errors.Wrap(err, "error in call youtube api"), domain.ErrProvider)
	}

	//vídeos removidos ou privados simplesmente não aparecem em Items
	if len(response.Items) < len(ids) {
		s.log.Debug(fmt.Sprintf("youtube returned %d of %d requested videos", len(response.Items), len(ids)))
	}

	videos := make([]domain.VideoDuration, 0, len(response.Items))
	for _, item := range response.Items {
		if item == nil || item.Id == "" {
			continue
		}

		iso := ""
		if item.ContentDetails != nil {
			iso = item.ContentDetails.Duration
		}

		videos = append(videos, domain.VideoDuration{
			ID:          item.Id,
			ISODuration: iso,
		})
	}

	return videos, nil
}
