package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"keysmith/internal/config"
	"keysmith/internal/extract"
	"keysmith/internal/keytable"
	"keysmith/internal/labelcache"
	"keysmith/internal/svggen"
)

// Converter abstracts the text-to-path tool invocation.
type Converter interface {
	Convert(ctx context.Context, doc string, inPath, outPath string) error
}

// Options controls a single run.
type Options struct {
	// Force regenerates every selected key even on a cache hit.
	Force bool
	// Only restricts the run to the named keys, in table order. Unknown
	// names fail the run before any key is processed.
	Only []string
}

// Failure pairs a key name with the error that stopped its generation.
type Failure struct {
	Key string
	Err error
}

// Result summarizes a run.
type Result struct {
	Generated []string
	Skipped   []string
	Failed    []Failure
}

// Pipeline generates label fragments for the key table.
type Pipeline struct {
	cfg    *config.Config
	keys   []keytable.Key
	conv   Converter
	cache  *labelcache.Store
	logger *slog.Logger
	style  svggen.Style
}

// New constructs a pipeline. cache may be nil to disable skip
// detection; logger may be nil for silent operation.
func New(cfg *config.Config, keys []keytable.Key, conv Converter, cache *labelcache.Store, logger *slog.Logger) (*Pipeline, error) {
	if cfg == nil {
		return nil, errors.New("pipeline requires config")
	}
	if conv == nil {
		return nil, errors.New("pipeline requires a converter")
	}
	if err := keytable.Validate(keys); err != nil {
		return nil, fmt.Errorf("key table: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Pipeline{
		cfg:   cfg,
		keys:  keys,
		conv:  conv,
		cache: cache,
		logger: logger.With(
			slog.String("component", "pipeline"),
		),
		style: svggen.Style{
			FontFamily: cfg.Render.FontFamily,
			FontSize:   cfg.Render.FontSize,
			Fill:       cfg.Render.Fill,
			Stroke:     cfg.Render.Stroke,
		},
	}, nil
}

// Run walks the key table sequentially and returns a summary. The
// returned error is non-nil when the run could not start, when the
// context was cancelled, or when at least one key failed.
func (p *Pipeline) Run(ctx context.Context, opts Options) (*Result, error) {
	keys, err := p.selectKeys(opts.Only)
	if err != nil {
		return nil, err
	}

	if err := p.cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lock := flock.New(p.cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another keysmith run holds %s", p.cfg.LockPath())
	}
	defer func() { _ = lock.Unlock() }()

	logger := p.logger.With(slog.String("run_id", uuid.NewString()))
	result := &Result{}
	total := len(keys)

	for i, key := range keys {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		logger.Info(fmt.Sprintf("Processing key: %s (%d/%d)", key.Name, i+1, total))

		doc := svggen.Document(key, p.style)
		hash := labelcache.Hash(doc)
		outPath := filepath.Join(p.cfg.KeysDir(), key.Name+".partial.svg")

		if !opts.Force && p.upToDate(ctx, logger, key.Name, hash, outPath) {
			logger.Debug("fragment up to date", slog.String("key", key.Name))
			result.Skipped = append(result.Skipped, key.Name)
			continue
		}

		if err := p.generate(ctx, key, doc, outPath); err != nil {
			logger.Warn("key generation failed",
				slog.String("key", key.Name),
				slog.Any("error", err),
			)
			result.Failed = append(result.Failed, Failure{Key: key.Name, Err: err})
			continue
		}

		result.Generated = append(result.Generated, key.Name)
		if p.cache != nil {
			entry := labelcache.Entry{KeyName: key.Name, InputHash: hash, OutputPath: outPath}
			if err := p.cache.Record(ctx, entry); err != nil {
				logger.Warn("cache update failed",
					slog.String("key", key.Name),
					slog.Any("error", err),
				)
			}
		}
	}

	if n := len(result.Failed); n > 0 {
		return result, fmt.Errorf("%d of %d keys failed", n, total)
	}
	return result, nil
}

// generate runs one key through convert and extract. The transfer file
// pair is unique to the key and removed before returning, success or
// not; removal tolerates files the failed tool never created.
func (p *Pipeline) generate(ctx context.Context, key keytable.Key, doc, outPath string) error {
	inPath := filepath.Join(p.cfg.Paths.WorkDir, key.Name+".in.svg")
	convertedPath := filepath.Join(p.cfg.Paths.WorkDir, key.Name+".out.svg")
	defer removeTransient(inPath, convertedPath)

	if err := p.conv.Convert(ctx, doc, inPath, convertedPath); err != nil {
		return err
	}

	converted, err := os.Open(convertedPath)
	if err != nil {
		return fmt.Errorf("open converted document: %w", err)
	}
	defer converted.Close()

	out, err := os.OpenFile(outPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("open output fragment: %w", err)
	}
	defer out.Close()

	lines, err := extract.Copy(out, converted)
	if err != nil {
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close output fragment: %w", err)
	}
	if lines == 0 {
		return errors.New("no path geometry extracted from converter output")
	}
	return nil
}

func (p *Pipeline) upToDate(ctx context.Context, logger *slog.Logger, name, hash, outPath string) bool {
	if p.cache == nil {
		return false
	}
	entry, err := p.cache.Lookup(ctx, name)
	if err != nil {
		logger.Warn("cache lookup failed", slog.String("key", name), slog.Any("error", err))
		return false
	}
	if entry == nil || entry.InputHash != hash || entry.OutputPath != outPath {
		return false
	}
	info, err := os.Stat(outPath)
	return err == nil && info.Size() > 0
}

func (p *Pipeline) selectKeys(only []string) ([]keytable.Key, error) {
	if len(only) == 0 {
		return p.keys, nil
	}
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		if _, ok := keytable.Lookup(p.keys, name); !ok {
			return nil, fmt.Errorf("unknown key %q", name)
		}
		wanted[name] = true
	}
	selected := make([]keytable.Key, 0, len(wanted))
	for _, key := range p.keys {
		if wanted[key.Name] {
			selected = append(selected, key)
		}
	}
	return selected, nil
}

// removeTransient deletes the transfer files, tolerating ones a failed
// conversion never created. Leftovers are harmless either way; the next
// run overwrites them.
func removeTransient(paths ...string) {
	for _, path := range paths {
		_ = os.Remove(path)
	}
}
