package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/iqfall/iqfall/iqfall"
	"github.com/iqfall/iqfall/radio"
	"github.com/iqfall/iqfall/render"
)

const version = "0.2.0"

var (
	frameRate uint32
	frameLen  int
	maxDB     float64
	inputPath string
	device    string
	logPath   string
)

var rootCmd = &cobra.Command{
	Use:     "iqfall <freq-hz> <sample-rate-hz>",
	Short:   "Terminal spectrum and waterfall display for IQ sample streams.",
	Version: version,
	Args:    cobra.ExactArgs(2),
	Run:     func(cmd *cobra.Command, args []string) { run(args) },
}

func init() {
	rootCmd.Flags().Uint32VarP(&frameRate, "fft-rate", "r", 10, "Frames per second")
	rootCmd.Flags().IntVarP(&frameLen, "fft-len", "n", 0, "Transform length; 0 tracks the terminal width")
	rootCmd.Flags().Float64VarP(&maxDB, "max-db", "m", render.DefaultMaxDB, "Full-scale intensity in dB")
	rootCmd.Flags().StringVarP(&inputPath, "file", "f", "", "Replay an iq8 recording instead of a device")
	rootCmd.Flags().StringVarP(&device, "device", "d", "0", "Device serial number or index")
	rootCmd.Flags().StringVarP(&logPath, "log", "l", "", "Write logs to a file; default discards")
}

func main() {
	rootCmd.Execute()
}

func fatal(msg string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	os.Exit(1)
}

// replayChunkSamples sizes file-replay chunks; device streams use the
// driver's own transfer size.
const replayChunkSamples = 16384

func run(args []string) {
	freqHz, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		fatal("bad frequency", err)
	}
	rate64, err := strconv.ParseUint(args[1], 10, 32)
	if err != nil {
		fatal("bad sample rate", err)
	}
	sampleHz := uint32(rate64)
	if frameRate == 0 {
		fatal("bad frame rate", fmt.Errorf("must be positive"))
	}

	if logPath == "" {
		log.SetOutput(io.Discard)
	} else {
		logf, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0644)
		if err != nil {
			fatal("opening log", err)
		}
		defer logf.Close()
		log.SetOutput(logf)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var chunks <-chan []radio.IQ8
	if inputPath != "" {
		iqr, closer, err := iqfall.OpenIQR(inputPath)
		if err != nil {
			fatal("opening input", err)
		}
		defer closer()
		chunks = iqr.BatchStream(ctx, replayChunkSamples, 0)
	} else {
		if err := radio.Init(); err != nil {
			fatal("initializing driver", err)
		}
		defer radio.Exit()
		sdr, err := radio.Open(ctx, device)
		if err != nil {
			fatal("opening device", err)
		}
		defer sdr.Close()
		if err := sdr.SetFrequency(freqHz); err != nil {
			fatal("tuning device", err)
		}
		if err := sdr.SetSampleRate(sampleHz); err != nil {
			fatal("setting sample rate", err)
		}
		if chunks, err = sdr.StartRx(ctx); err != nil {
			fatal("starting rx", err)
		}
		defer sdr.StopRx()
		log.Printf("tuned %v", sdr.Info().Band)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal("opening terminal", err)
	}
	if err := screen.Init(); err != nil {
		fatal("initializing terminal", err)
	}
	defer screen.Fini()

	canvas := render.NewCanvas(screen, maxDB)
	reqLen := frameLen
	if reqLen <= 0 {
		reqLen = canvas.SpectrumWidth()
	}
	cfg := iqfall.NewFrameConfig(reqLen)

	rec := &iqfall.Recorder{}
	spectra := iqfall.SpectraChan(rec.Chan(chunks), cfg, sampleHz, frameRate, nil)

	events := make(chan tcell.Event, 16)
	go screen.ChannelEvents(events, ctx.Done())

	recPath := fmt.Sprintf("%d[%d].iq8", freqHz, sampleHz)
	pause := false
	for spectrum := range spectra {
		if !pause {
			canvas.AddSpectrum(spectrum)
		}
		// Drain pending events once per frame; never block the draw loop.
		for quit := false; !quit; {
			select {
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					switch {
					case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
						return
					case ev.Rune() == 'q':
						return
					case ev.Rune() == ' ':
						pause = !pause
					case ev.Rune() == 'w':
						if _, err := rec.Toggle(recPath); err != nil {
							log.Println("failed to record", recPath, err)
						}
					}
				case *tcell.EventResize:
					screen.Sync()
				}
			default:
				quit = true
			}
		}
		if frameLen <= 0 {
			cfg.Set(canvas.SpectrumWidth())
		}
	}
	log.Println("stream terminated")
}
