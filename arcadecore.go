// This file is part of Arcadecore.
//
// Arcadecore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Arcadecore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Arcadecore.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/jetsetilly/arcadecore/curated"
	"github.com/jetsetilly/arcadecore/digest"
	"github.com/jetsetilly/arcadecore/drivers/demo"
	"github.com/jetsetilly/arcadecore/environment"
	"github.com/jetsetilly/arcadecore/govern"
	"github.com/jetsetilly/arcadecore/hardware"
	"github.com/jetsetilly/arcadecore/logger"
	"github.com/jetsetilly/arcadecore/modalflag"
	"github.com/jetsetilly/arcadecore/otoaudio"
	"github.com/jetsetilly/arcadecore/performance"
	"github.com/jetsetilly/arcadecore/performance/limiter"
	"github.com/jetsetilly/arcadecore/prefs"
	"github.com/jetsetilly/arcadecore/reference"
	"github.com/jetsetilly/arcadecore/screenshot"
	"github.com/jetsetilly/arcadecore/statsview"
	"github.com/jetsetilly/arcadecore/version"
	"github.com/jetsetilly/arcadecore/wavwriter"
)

func main() {
	// #ctrlc ends the emulation at the end of the current frame
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	exitVal := launch(os.Args[1:], os.Stdout, intChan)

	os.Exit(exitVal)
}

// launch the emulator with the command line arguments. returns the value to
// use with os.Exit()
func launch(args []string, output io.Writer, intChan <-chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "WAV", "DIGEST", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output, intChan)

	case "WAV":
		err = wav(md, output, intChan)

	case "DIGEST":
		err = dgst(md, output, intChan)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// the flags shared by every mode.
type common struct {
	frames *int
	prefs  *string
	log    *bool
}

func addCommon(md *modalflag.Modes, frames int) common {
	return common{
		frames: md.AddInt("frames", frames, "number of frames to run. a negative value runs until interrupted"),
		prefs:  md.AddString("prefs", "", "preferences to override. eg. \"sound.samplerate::22050\""),
		log:    md.AddBool("log", false, "echo log to stdout"),
	}
}

// create the demo machine, applying the common flags. the function returned
// must be called when the machine is no longer required.
func newMachine(c common, output io.Writer, normalise bool) (*hardware.Machine, *demo.Demo, func(), error) {
	if *c.log {
		logger.SetEcho(output)
	}

	prefs.PushCommandLineStack(*c.prefs)

	done := func() {
		prefs.PopCommandLineStack()
		logger.SetEcho(nil)
	}

	env, err := environment.NewEnvironment(environment.MainEmulation, nil)
	if err != nil {
		done()
		return nil, nil, nil, err
	}

	if normalise {
		env.Normalise()
	}

	m, d, err := demo.NewMachine(env)
	if err != nil {
		done()
		return nil, nil, nil, err
	}

	return m, d, done, nil
}

// returns a function suitable for Machine.RunForFrameCount(). the emulation
// ends when an interrupt signal is received.
func continueCheck(intChan <-chan os.Signal) func(int) (govern.State, error) {
	return func(_ int) (govern.State, error) {
		select {
		case <-intChan:
			return govern.Ending, nil
		default:
		}
		return govern.Running, nil
	}
}

func run(md *modalflag.Modes, output io.Writer, intChan <-chan os.Signal) error {
	md.NewMode()

	c := addCommon(md, 600)
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	png := md.AddString("png", "", "save screenshot of the final frame to file")
	scale := md.AddInt("scale", 2, "scale of the screenshot")
	play := md.AddBool("play", false, "play audio through the audio device")
	limit := md.AddBool("limit", false, "limit the emulation to the frame rate of the machine")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	m, d, done, err := newMachine(c, output, false)
	if err != nil {
		return err
	}
	defer done()

	if *play {
		aud, err := otoaudio.NewAudio(m.Mixer.SampleRate(), m.Mixer.Stereo())
		if err != nil {
			// the emulation can continue without sound
			logger.Log(m.Env, "arcadecore", err)
		} else {
			m.AttachAudioSink(aud)
		}
	}

	var shot *screenshot.Sink
	if *png != "" {
		if *c.frames < 1 {
			return curated.Errorf("screenshot requires a positive number of frames")
		}
		shot = screenshot.NewSink(*png, *c.frames-1, *scale)
		m.AttachFrameSink(shot)
	}

	check := continueCheck(intChan)
	if *limit || *play {
		lim := limiter.NewFPSLimiter(m.Cfg.FPS)
		defer lim.Stop()
		unlimited := check
		check = func(frame int) (govern.State, error) {
			lim.Wait()
			return unlimited(frame)
		}
	}

	err = m.RunForFrameCount(*c.frames, check)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%d frames: %s\n", m.Frame(), d)
	if shot != nil && shot.Saved() {
		fmt.Fprintf(output, "screenshot: %s\n", *png)
	}

	return m.Close()
}

func wav(md *modalflag.Modes, output io.Writer, intChan <-chan os.Signal) error {
	md.NewMode()

	c := addCommon(md, 600)

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("wav mode requires a single filename")
	}

	if *c.frames < 0 {
		return curated.Errorf("wav mode requires a positive number of frames")
	}

	m, _, done, err := newMachine(c, output, false)
	if err != nil {
		return err
	}
	defer done()

	ww, err := wavwriter.NewWavWriter(md.GetArg(0), m.Mixer.SampleRate())
	if err != nil {
		return err
	}
	m.AttachAudioSink(ww)

	err = m.RunForFrameCount(*c.frames, continueCheck(intChan))
	if err != nil {
		return err
	}

	// wav file is written when mixing ends
	if err := m.Close(); err != nil {
		return err
	}

	fmt.Fprintf(output, "%d samples written to %s\n", ww.Samples(), md.GetArg(0))

	return nil
}

func dgst(md *modalflag.Modes, output io.Writer, intChan <-chan os.Signal) error {
	md.NewMode()

	c := addCommon(md, 60)
	ref := md.AddString("ref", "", "compare audio with a reference recording (.wav or .mp3)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	if *c.frames < 0 {
		return curated.Errorf("digest mode requires a positive number of frames")
	}

	var rec reference.Recording
	if *ref != "" {
		rec, err = reference.Load(*ref)
		if err != nil {
			return err
		}
	}

	// digests must not depend on the contents of the preferences file
	m, _, done, err := newMachine(c, output, true)
	if err != nil {
		return err
	}
	defer done()

	aud := digest.NewAudio()
	vid := digest.NewVideo()
	m.AttachAudioSink(aud)
	m.AttachFrameSink(vid)

	capture := &reference.Capture{}
	if *ref != "" {
		m.AttachAudioSink(capture)
	}

	err = m.RunForFrameCount(*c.frames, continueCheck(intChan))
	if err != nil {
		return err
	}

	if err := m.Close(); err != nil {
		return err
	}

	fmt.Fprintf(output, "audio: %s\n", aud.Hash())
	fmt.Fprintf(output, "video: %s\n", vid.Hash())

	if *ref != "" {
		rms, err := rec.Compare(capture.Samples, m.Mixer.SampleRate(), capture.Channels)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "reference: %s rms=%.2f\n", filepath.Base(*ref), rms)
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	c := addCommon(md, -1)
	duration := md.AddString("duration", "5s", "run duration, after a two second lead time")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	dur, err := time.ParseDuration(*duration)
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, _, done, err := newMachine(c, output, false)
	if err != nil {
		return err
	}
	defer done()

	if err := performance.Check(output, prf, m, 2*time.Second, dur); err != nil {
		return err
	}

	return m.Close()
}
