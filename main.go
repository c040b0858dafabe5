// ABOUTME: Entry point for the respeed batch tool
// ABOUTME: Parses CLI flags and runs the speed-adjustment batch
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sfxkit/respeed-go/internal/batch"
	"github.com/sfxkit/respeed-go/internal/ui"
	"github.com/sfxkit/respeed-go/internal/version"
	"github.com/sfxkit/respeed-go/pkg/audio/decode"
	"github.com/sfxkit/respeed-go/pkg/audio/encode"
)

var (
	dirFlag    = flag.String("dir", "", "Target directory (default: directory of the executable)")
	factor     = flag.Float64("factor", 1.15, "Speed multiplier, must be > 0")
	backupName = flag.String("backup-dir", "slower", "Backup subdirectory name")
	ffmpegBin  = flag.String("ffmpeg", "ffmpeg", "Path to ffmpeg")
	ffprobeBin = flag.String("ffprobe", "ffprobe", "Path to ffprobe")
	bitrate    = flag.String("bitrate", "320k", "Bitrate for lossy output formats")
	logFile    = flag.String("log-file", "respeed.log", "Log file path")
	noTUI      = flag.Bool("no-tui", false, "Disable TUI, use streaming logs instead")
	streamLogs = flag.Bool("stream-logs", false, "Alias for -no-tui")
	dryRun     = flag.Bool("dry-run", false, "Report the per-file plan without touching files")
)

func main() {
	flag.Parse()

	useTUI := !(*noTUI || *streamLogs)

	// Set up logging
	f, err := os.OpenFile(*logFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("error opening log file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if useTUI {
		// TUI mode: log only to file
		log.SetOutput(f)
	} else {
		multiWriter := io.MultiWriter(os.Stdout, f)
		log.SetOutput(multiWriter)
	}

	if *factor <= 0 {
		log.Fatalf("speed factor must be positive, got %g", *factor)
	}

	// Default to the directory holding the executable, like dropping the
	// tool into a folder of sound effects and running it bare.
	dir := *dirFlag
	selfName := ""
	if exe, err := os.Executable(); err == nil {
		selfName = filepath.Base(exe)
		if dir == "" {
			dir = filepath.Dir(exe)
		}
	} else if dir == "" {
		log.Fatalf("cannot locate executable directory: %v", err)
	}

	dec := decode.New()
	dec.FFmpegBin = *ffmpegBin
	dec.FFprobeBin = *ffprobeBin
	enc := encode.New()
	enc.FFmpegBin = *ffmpegBin
	enc.Bitrate = *bitrate

	cfg := batch.Config{
		Dir:        dir,
		BackupName: *backupName,
		Factor:     *factor,
		SelfName:   selfName,
		DryRun:     *dryRun,
		Decoder:    dec,
		Encoder:    enc,
	}

	if useTUI {
		runWithTUI(cfg)
	} else {
		runStreaming(cfg)
	}
}

// runStreaming prints a progress line per file to stdout and the log file.
func runStreaming(cfg batch.Config) {
	log.Printf("%s %s", version.Product, version.Version)
	log.Printf("Speeding up all audio files in %s by %gx...", cfg.Dir, cfg.Factor)

	cfg.OnScan = func(found int) {
		if found == 0 {
			log.Printf("No audio files found!")
			return
		}
		log.Printf("Found %d audio file(s)", found)
	}
	cfg.OnEvent = func(ev batch.Event) {
		switch ev.Kind {
		case batch.KindBackedUp:
			log.Printf("Moved original: %s -> %s/", ev.File, cfg.BackupName)
		case batch.KindExistingBackup:
			log.Printf("Using existing backup: %s", ev.File)
		case batch.KindProcessed:
			log.Printf("  ✓ Completed: %s (%dHz -> %dHz, %.2fs)", ev.File, ev.OldRate, ev.NewRate, ev.Duration.Seconds())
		case batch.KindFailed:
			log.Printf("  ✗ Error processing %s: %v", ev.File, ev.Err)
		case batch.KindPlanned:
			log.Printf("Would process: %s", ev.File)
		}
	}

	p, err := batch.New(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}
	summary, err := p.Run(context.Background())
	if err != nil {
		log.Fatalf("batch aborted: %v", err)
	}
	if summary.Found == 0 {
		return
	}

	// Per-file failures are reported above, not raised: exit code stays 0.
	log.Printf("Done! %d processed, %d failed.", summary.Processed, summary.Failed)
	log.Printf("Original files are preserved in the '%s' folder.", cfg.BackupName)
}

// runWithTUI drives the bubbletea progress view while the batch runs.
func runWithTUI(cfg batch.Config) {
	prog, err := ui.Run(cfg.Dir, cfg.Factor)
	if err != nil {
		log.Fatalf("Failed to start TUI: %v", err)
	}

	cfg.OnScan = func(found int) {
		prog.Send(ui.ScanMsg{Found: found})
	}
	cfg.OnEvent = func(ev batch.Event) {
		prog.Send(ui.ProgressMsg(ev))
	}

	p, err := batch.New(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	go func() {
		summary, err := p.Run(context.Background())
		if err != nil {
			log.Printf("batch aborted: %v", err)
			prog.Send(tea.Quit())
			return
		}
		log.Printf("Done! %d processed, %d failed.", summary.Processed, summary.Failed)
		prog.Send(ui.DoneMsg{Summary: summary})
	}()

	if _, err := prog.Run(); err != nil {
		log.Fatalf("TUI error: %v", err)
	}

	// Repeat the closing note on plain stdout once the alt screen is gone.
	fmt.Printf("Original files are preserved in the '%s' folder.\n", cfg.BackupName)
}
