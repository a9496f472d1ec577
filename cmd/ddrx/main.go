package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/kd9xyz/ddrx/audio"
	"github.com/kd9xyz/ddrx/config"
	"github.com/kd9xyz/ddrx/control"
	"github.com/kd9xyz/ddrx/ddr"
	"github.com/kd9xyz/ddrx/radio"
)

var (
	cfgFile    string
	listenAddr string
	controlURL string
	audioDir   string
	rawIQDir   string
)

// audioSampleRate is every DDR's sink rate per spec section 6: exactly
// 16 kHz, regardless of modulation or tuner rate.
const audioSampleRate = 16000

var rootCmd = &cobra.Command{
	Use:   "ddrx",
	Short: "A wideband-to-narrowband digital drop receiver.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "ddrx.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&controlURL, "control", "http://127.0.0.1:8090", "control API base URL, for list/tune")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the configuration, attach tuners, and run every configured DDR",
		Run:   func(cmd *cobra.Command, args []string) { serve() },
	}
	serveCmd.Flags().StringVar(&listenAddr, "listen", "127.0.0.1:8090", "control API listen address")
	serveCmd.Flags().StringVar(&audioDir, "audio-dir", "", "directory to capture each DDR's audio to <name>.wav; empty plays to the speaker")
	serveCmd.Flags().StringVar(&rawIQDir, "raw-iq-dir", "", "directory to capture each tuner's raw I/Q stream to <tuner>.wav; empty disables raw capture")
	rootCmd.AddCommand(serveCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the DDRs registered with a running serve process",
		Run:   func(cmd *cobra.Command, args []string) { list() },
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "tune <ddr> <hz>",
		Short: "Change a running DDR's tuned RF frequency",
		Args:  cobra.ExactArgs(2),
		Run:   func(cmd *cobra.Command, args []string) { tune(args[0], args[1]) },
	})
}

func serve() {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatal("loading config", "err", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tuners := make(map[string]*radio.RTLTuner)
	var rawCaptures []*radio.RawIQCapture
	for name, tc := range cfg.Tuners {
		addr, err := net.ResolveTCPAddr("tcp", fmt.Sprintf("127.0.0.1:%d", 1234+len(tuners)))
		if err != nil {
			log.Fatal("resolving rtl_tcp address", "tuner", name, "err", err)
		}
		t, err := radio.NewRTLTuner(ctx, name, tc.Serial, addr, tc.SampleRate, tc.CenterHz, tc.Calibrate)
		if err != nil {
			log.Fatal("starting tuner", "tuner", name, "err", err)
		}
		tuners[name] = t

		if rawIQDir != "" {
			rc, err := radio.NewRawIQCapture(rawIQDir, name, t.SampleRate())
			if err != nil {
				log.Error("opening raw IQ capture", "tuner", name, "err", err)
			} else {
				t.SetRawCapture(rc)
				rawCaptures = append(rawCaptures, rc)
			}
		}
	}
	defer func() {
		for _, t := range tuners {
			t.Close()
		}
		for _, c := range rawCaptures {
			c.Close()
		}
	}()

	reg := ddr.NewRegistry()
	var sinks []audio.Sink
	defer func() {
		for _, s := range sinks {
			s.Close()
		}
	}()

	for name, dc := range cfg.DDRs {
		params, wbrx, err := dc.Params()
		if err != nil {
			log.Error("skipping DDR", "ddr", name, "err", err)
			continue
		}
		tuner, ok := tuners[wbrx]
		if !ok {
			log.Error("skipping DDR", "ddr", name, "err", fmt.Sprintf("unknown tuner %q", wbrx))
			continue
		}

		d := ddr.NewDDR(name)
		if err := d.Initialize(reg, tuner, params); err != nil {
			log.Error("initializing DDR", "ddr", name, "err", err)
			continue
		}
		log.Info("DDR registered", "ddr", name, "fq", params.FQ, "modulation", params.Modulation, "tuner", wbrx)

		sink, err := openSink(name)
		if err != nil {
			log.Error("opening audio sink", "ddr", name, "err", err)
			continue
		}
		sinks = append(sinks, sink)
		d.SetSink(func(samples []float32) {
			if err := sink.WriteSamples(samples); err != nil {
				log.Error("writing audio", "ddr", name, "err", err)
			}
		})
	}

	srv := control.NewServer(reg)
	httpSrv := &http.Server{Addr: listenAddr, Handler: srv.Handler()}
	go func() {
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("control API stopped", "err", err)
		}
	}()
	log.Info("control API listening", "addr", listenAddr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	httpSrv.Shutdown(ctx)
}

func openSink(name string) (audio.Sink, error) {
	if audioDir == "" {
		return audio.NewSpeakerSink(audioSampleRate)
	}
	f, err := os.Create(filepath.Join(audioDir, name+".wav"))
	if err != nil {
		return nil, err
	}
	return audio.NewWAVSink(f, audioSampleRate), nil
}

func list() {
	c := control.NewClient(controlURL)
	infos, err := c.List()
	if err != nil {
		log.Fatal("listing DDRs", "err", err)
	}
	for _, info := range infos {
		fmt.Printf("%-12s fq=%-12d mod=%-5s enabled=%v\n", info.Name, info.FQ, info.Modulation, info.Enabled)
	}
}

func tune(name, hzStr string) {
	var hz int64
	if _, err := fmt.Sscanf(hzStr, "%d", &hz); err != nil {
		log.Fatal("parsing frequency", "value", hzStr, "err", err)
	}
	c := control.NewClient(controlURL)
	if err := c.Tune(name, hz); err != nil {
		log.Fatal("tuning DDR", "ddr", name, "err", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
