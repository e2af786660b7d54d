// Package notify emits the phase-completion cue. Delivery is best-effort:
// everything runs on a detached goroutine with no return channel, and every
// failure (missing file, decoder, audio device, notification daemon) is
// discarded without surfacing to the timer loop.
package notify

import (
	"os"
	"time"

	"github.com/gen2brain/beeep"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
)

// SoundFile is the audio cue played on phase completion, looked up in the
// app config directory first, then the working directory.
const SoundFile = "notification.mp3"

type Notifier struct {
	soundPath string
}

// New builds a notifier. soundPath may name a file that does not exist;
// playback then degrades to the system beep.
func New(soundPath string) *Notifier {
	return &Notifier{soundPath: soundPath}
}

// PhaseComplete fires the cue for a finished phase. It returns immediately;
// the in-flight goroutine is never joined and may be dropped at process
// exit.
func (n *Notifier) PhaseComplete(phase string) {
	soundPath := n.soundPath
	go func() {
		_ = beeep.Notify("pomo", phase+" finished", "")
		if err := playFile(soundPath); err != nil {
			_ = beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		}
	}()
}

func playFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return err
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() {
		close(done)
	})))
	<-done
	return nil
}
