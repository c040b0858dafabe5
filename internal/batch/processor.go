// ABOUTME: Batch audio speed adjustment orchestration
// ABOUTME: Backs up originals, reinterprets sample rates, writes results in place
package batch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sfxkit/respeed-go/pkg/audio"
	"github.com/sfxkit/respeed-go/pkg/audio/decode"
	"github.com/sfxkit/respeed-go/pkg/audio/encode"
)

// Config holds batch processor configuration.
type Config struct {
	Dir        string  // target directory
	BackupName string  // backup subdirectory name, default "slower"
	Factor     float64 // speed multiplier, must be > 0
	SelfName   string  // executable file name to exclude from discovery
	DryRun     bool

	Decoder *decode.Decoder
	Encoder *encode.Encoder

	// OnScan receives the number of files found, before processing starts.
	// May be nil.
	OnScan func(found int)

	// OnEvent receives per-file progress. May be nil. Called from Run's
	// goroutine only.
	OnEvent func(Event)
}

// Kind classifies a progress event.
type Kind int

const (
	KindBackedUp Kind = iota
	KindExistingBackup
	KindProcessed
	KindFailed
	KindPlanned
)

// Event is a single per-file progress report.
type Event struct {
	Kind     Kind
	File     string
	Err      error
	OldRate  int
	NewRate  int
	Duration time.Duration // output duration at the new rate
}

// Summary is the end-of-run tally.
type Summary struct {
	Found     int
	Processed int
	Failed    int
}

// Processor runs the backup-then-transform loop over a directory.
type Processor struct {
	cfg Config
}

// New creates a processor, applying defaults for unset config fields.
func New(cfg Config) (*Processor, error) {
	if cfg.Factor <= 0 {
		return nil, fmt.Errorf("speed factor must be positive, got %g", cfg.Factor)
	}
	if cfg.Dir == "" {
		return nil, errors.New("target directory not set")
	}
	if cfg.BackupName == "" {
		cfg.BackupName = "slower"
	}
	if cfg.Decoder == nil {
		cfg.Decoder = decode.New()
	}
	if cfg.Encoder == nil {
		cfg.Encoder = encode.New()
	}
	return &Processor{cfg: cfg}, nil
}

// Run processes every supported audio file in the target directory. Per-file
// failures are reported through OnEvent and counted; only discovery and
// backup-directory errors abort the run.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	var summary Summary

	names, err := discover(p.cfg.Dir, p.cfg.SelfName)
	if err != nil {
		return summary, fmt.Errorf("scanning %s: %w", p.cfg.Dir, err)
	}
	summary.Found = len(names)
	if p.cfg.OnScan != nil {
		p.cfg.OnScan(len(names))
	}
	if len(names) == 0 {
		return summary, nil
	}

	backupDir := filepath.Join(p.cfg.Dir, p.cfg.BackupName)
	if !p.cfg.DryRun {
		if err := os.MkdirAll(backupDir, 0o755); err != nil {
			return summary, fmt.Errorf("creating backup directory: %w", err)
		}
	}

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if err := p.processFile(name, backupDir); err != nil {
			summary.Failed++
			p.emit(Event{Kind: KindFailed, File: name, Err: err})
			continue
		}
		summary.Processed++
	}

	return summary, nil
}

// processFile backs up one file (idempotently) and writes the sped-up
// version at its original path.
func (p *Processor) processFile(name, backupDir string) error {
	src := filepath.Join(p.cfg.Dir, name)
	backup := filepath.Join(backupDir, name)

	if p.cfg.DryRun {
		p.emit(Event{Kind: KindPlanned, File: name})
		return nil
	}

	// The backup, once made, is the source of truth: a second run must not
	// overwrite it with already-transformed output.
	if _, err := os.Stat(backup); errors.Is(err, fs.ErrNotExist) {
		if err := os.Rename(src, backup); err != nil {
			return fmt.Errorf("backup: %w", err)
		}
		p.emit(Event{Kind: KindBackedUp, File: name})
	} else if err != nil {
		return fmt.Errorf("backup: %w", err)
	} else {
		p.emit(Event{Kind: KindExistingBackup, File: name})
	}

	clip, err := p.cfg.Decoder.File(backup)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	faster, err := audio.Respeed(clip, p.cfg.Factor)
	if err != nil {
		return err
	}

	// Encode to a temp path in the same directory, then rename over the
	// original path so a failed encode never leaves a half-written file.
	tmp := tempPath(src)
	if err := p.cfg.Encoder.File(tmp, faster); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("encode: %w", err)
	}
	if err := os.Rename(tmp, src); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write: %w", err)
	}

	p.emit(Event{
		Kind:     KindProcessed,
		File:     name,
		OldRate:  clip.Format.SampleRate,
		NewRate:  faster.Format.SampleRate,
		Duration: faster.Duration(),
	})
	return nil
}

// tempPath builds a hidden sibling path that keeps the original extension,
// since the encoder picks its codec from the extension.
func tempPath(src string) string {
	dir := filepath.Dir(src)
	base := filepath.Base(src)
	ext := filepath.Ext(base)
	stem := strings.TrimSuffix(base, ext)
	return filepath.Join(dir, "."+stem+"-"+uuid.NewString()[:8]+ext)
}

func (p *Processor) emit(ev Event) {
	if p.cfg.OnEvent != nil {
		p.cfg.OnEvent(ev)
	}
}
