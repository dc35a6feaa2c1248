package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/jc0n/video-montage/logging"
	"github.com/jc0n/video-montage/montage"
	"github.com/jc0n/video-montage/ui"
	"github.com/jc0n/video-montage/utils"
)

// Version is overridden at release time via -ldflags "-X main.Version=...".
var Version = "0.2.0"

const author = "John O'Connor"

// CLI mirrors the historical video-montage command line: positional paths
// plus tuning flags. The two-letter short options of old releases (-ss,
// -bg, -fg) survive as the aliases --ss, --bg and --fg.
type CLI struct {
	Paths []string `arg:"" name:"path" help:"Video files or directories to montage." type:"path"`

	Thumbnails      int              `help:"Number of thumbnails per montage." short:"n" default:"25"`
	Thumbsize       int              `help:"Bounding size of each thumbnail in pixels." short:"s" default:"435"`
	Outdir          string           `help:"Directory for montage images (defaults to each video's directory)." short:"d" type:"path" placeholder:"DIR"`
	Overwrite       bool             `help:"Replace existing montage images." short:"f"`
	StartSeconds    int              `help:"Skip this many seconds of the video before sampling." aliases:"ss" default:"120" placeholder:"N"`
	Format          string           `help:"Montage image format." short:"F" enum:"png,gif,jpg" default:"jpg"`
	Tempdir         string           `help:"Working directory for extracted thumbnails." short:"t" type:"path" placeholder:"DIR"`
	BackgroundColor string           `help:"Montage background color." aliases:"bg" default:"black"`
	LabelColor      string           `help:"Montage label color." aliases:"fg" default:"white"`
	FfmpegOptions   string           `help:"Extra options passed through to ffmpeg." placeholder:"OPTS"`
	ToolTimeout     time.Duration    `help:"Timeout per external tool invocation (0 waits forever)." default:"0s"`
	Recursive       bool             `help:"Recurse into subdirectories." short:"r"`
	Progress        bool             `help:"Show per-video progress." short:"p"`
	Quiet           bool             `help:"Only log errors." short:"q"`
	Verbose         bool             `help:"Log per-stage detail." short:"v"`
	Version         kong.VersionFlag `help:"Print version information and quit." short:"V"`
}

// config converts the parsed flags into the validated pipeline configuration.
func (c *CLI) config() montage.Config {
	return montage.Config{
		Thumbnails:      c.Thumbnails,
		ThumbSize:       c.Thumbsize,
		StartSeconds:    c.StartSeconds,
		Format:          c.Format,
		OutDir:          c.Outdir,
		TempDir:         c.Tempdir,
		BackgroundColor: c.BackgroundColor,
		LabelColor:      c.LabelColor,
		FFmpegOptions:   c.FfmpegOptions,
		ToolTimeout:     c.ToolTimeout,
		Overwrite:       c.Overwrite,
		Recursive:       c.Recursive,
		ShowProgress:    c.Progress && !c.Quiet,
	}
}

// versionString is what --version prints.
func versionString() string {
	return fmt.Sprintf("video-montage v%s by %s", Version, author)
}

// printSummary renders the closing line. Per-video errors are already
// logged; this is the human-facing recap.
func printSummary(cli *CLI, stats montage.Stats) {
	if cli.Quiet {
		return
	}
	line := fmt.Sprintf("%d montages created, %d skipped, %d failed (of %d videos)",
		stats.Created, stats.Skipped, stats.Failed, stats.Total)
	switch {
	case stats.Failed > 0:
		fmt.Println(ui.ErrorStyle.Render("❌ " + line))
	case stats.Skipped > 0:
		fmt.Println(ui.WarningStyle.Render("⚠️  " + line))
	default:
		fmt.Println(ui.SuccessStyle.Render("✅ " + line))
	}
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("video-montage"),
		kong.Description("Create montage images of frames sampled evenly from video files."),
		kong.UsageOnError(),
		kong.Vars{"version": versionString()},
	)

	log := logging.New(cli.Quiet, cli.Verbose)

	kctx.FatalIfErrorf(utils.ValidateDependencies())

	builder, err := montage.NewBuilder(cli.config(), log)
	kctx.FatalIfErrorf(err)

	if !cli.Quiet {
		fmt.Println(ui.HeaderStyle.Render(fmt.Sprintf("video-montage %s", Version)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := builder.ProcessVideos(ctx, cli.Paths)
	if err != nil {
		log.Error().Err(err).Msg("run aborted")
		stop()
		os.Exit(1)
	}

	printSummary(&cli, stats)
	if stats.Failed > 0 {
		stop()
		os.Exit(1)
	}
}
