package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/fgdc2sb/internal/core/domain"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driven"
	"github.com/custodia-labs/fgdc2sb/internal/core/ports/driving"
	"github.com/custodia-labs/fgdc2sb/internal/logger"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// xmlMIMEType is the content type of every converted document. The
// normaliser, not the registry, rejects names without an .xml extension.
const xmlMIMEType = "application/xml"

// ErrItemStoreUnavailable is returned when a record should be stored but
// no item store is configured.
var ErrItemStoreUnavailable = errors.New("item store not configured")

// ConversionService converts FGDC documents into item records.
type ConversionService struct {
	registry    driven.NormaliserRegistry
	itemStore   driven.ItemStore
	configStore driven.ConfigStore
}

// NewConversionService creates a new conversion service.
// itemStore and configStore are optional; without a config store the
// default settings apply.
func NewConversionService(
	registry driven.NormaliserRegistry,
	itemStore driven.ItemStore,
	configStore driven.ConfigStore,
) *ConversionService {
	return &ConversionService{
		registry:    registry,
		itemStore:   itemStore,
		configStore: configStore,
	}
}

// Convert converts document bytes. name is only checked for an .xml
// extension and recorded as the source.
func (s *ConversionService) Convert(
	ctx context.Context,
	name string,
	content []byte,
	opts driving.ConvertOptions,
) (*driving.ConversionResult, error) {
	settings, err := s.settings()
	if err != nil {
		return nil, err
	}
	return s.convert(ctx, name, content, opts, settings)
}

// ConvertFile reads and converts the file at path.
func (s *ConversionService) ConvertFile(
	ctx context.Context,
	path string,
	opts driving.ConvertOptions,
) (*driving.ConversionResult, error) {
	settings, err := s.settings()
	if err != nil {
		return nil, err
	}
	return s.convertFile(ctx, path, opts, settings)
}

// ConvertBatch converts paths concurrently, at most Settings.Workers at a
// time. Results keep the order of paths.
func (s *ConversionService) ConvertBatch(
	ctx context.Context,
	paths []string,
	opts driving.ConvertOptions,
) []driving.ConversionResult {
	results := make([]driving.ConversionResult, len(paths))

	settings, err := s.settings()
	if err != nil {
		for i, path := range paths {
			results[i] = driving.ConversionResult{Source: path, Err: err}
		}
		return results
	}

	logger.Section("Batch conversion")
	logger.Debug("converting %d files with %d workers", len(paths), settings.EffectiveWorkers())

	var g errgroup.Group
	g.SetLimit(settings.EffectiveWorkers())
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = driving.ConversionResult{Source: path, Err: err}
				return nil
			}
			result, err := s.convertFile(ctx, path, opts, settings)
			if err != nil {
				results[i] = driving.ConversionResult{Source: path, Err: err}
				return nil
			}
			results[i] = *result
			return nil
		})
	}
	_ = g.Wait() // workers report failures on their result

	return results
}

func (s *ConversionService) convertFile(
	ctx context.Context,
	path string,
	opts driving.ConvertOptions,
	settings domain.Settings,
) (*driving.ConversionResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.convert(ctx, path, content, opts, settings)
}

func (s *ConversionService) convert(
	ctx context.Context,
	name string,
	content []byte,
	opts driving.ConvertOptions,
	settings domain.Settings,
) (*driving.ConversionResult, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("%w: no normalisers registered", domain.ErrUnsupportedType)
	}

	raw := &domain.RawDocument{
		URI:       name,
		MIMEType:  xmlMIMEType,
		Content:   content,
		SourceURL: settings.SourceURL,
	}
	if opts.SourceURL != "" {
		raw.SourceURL = opts.SourceURL
	}
	if opts.ParentID != "" {
		parentID := opts.ParentID
		raw.ParentID = &parentID
	}

	normalised, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return nil, err
	}
	logger.Debug("converted %s (%s)", name, normalised.Format)

	record := normalised.Record
	result := &driving.ConversionResult{Source: name, Record: &record}

	if opts.Store || settings.StoreResults {
		id, err := s.store(ctx, name, record)
		if err != nil {
			return nil, err
		}
		result.StoredID = id
	}
	return result, nil
}

func (s *ConversionService) store(ctx context.Context, name string, record domain.ItemRecord) (string, error) {
	if s.itemStore == nil {
		return "", ErrItemStoreUnavailable
	}

	item := &domain.StoredItem{
		ID:        uuid.New().String(),
		SourceURI: name,
		Title:     record.Title,
		Record:    record,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.itemStore.Save(ctx, item); err != nil {
		return "", fmt.Errorf("storing %s: %w", name, err)
	}
	logger.Debug("stored %s as %s", name, item.ID)
	return item.ID, nil
}

func (s *ConversionService) settings() (domain.Settings, error) {
	if s.configStore == nil {
		return domain.DefaultSettings(), nil
	}
	settings, err := s.configStore.Load()
	if err != nil {
		return domain.Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	return settings, nil
}
