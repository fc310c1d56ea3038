package audio

import (
	"github.com/gen2brain/beeep"
	"github.com/sirupsen/logrus"
)

// Effects plays short UI sounds.
type Effects interface {
	Pop()
	Success()
}

// Notifier shows desktop notifications.
type Notifier interface {
	Notify(title, message string) error
}

// BeepEffects plays tones through the system beeper.
type BeepEffects struct {
	Log *logrus.Entry
}

func (b BeepEffects) Pop() {
	b.beep(880, 60)
}

func (b BeepEffects) Success() {
	b.beep(523, 120)
	b.beep(784, 200)
}

func (b BeepEffects) beep(freq float64, ms int) {
	if err := beeep.Beep(freq, ms); err != nil && b.Log != nil {
		b.Log.WithError(err).Debug("beep failed")
	}
}

// DesktopNotifier uses the platform notification service.
type DesktopNotifier struct{}

func (DesktopNotifier) Notify(title, message string) error {
	return beeep.Notify(title, message, "")
}

// Silent satisfies Effects and Notifier without making a sound.
type Silent struct{}

func (Silent) Pop()                        {}
func (Silent) Success()                    {}
func (Silent) Notify(string, string) error { return nil }

// Recorder remembers every effect and notification. Tests use it.
type Recorder struct {
	Events []string
}

func (r *Recorder) Pop()     { r.Events = append(r.Events, "pop") }
func (r *Recorder) Success() { r.Events = append(r.Events, "success") }

func (r *Recorder) Notify(title, message string) error {
	r.Events = append(r.Events, "notify:"+title+": "+message)
	return nil
}
