package obs

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters/histograms.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, value float64, labels ...Label)
	Histogram(name string, value float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(name string, value float64, labels ...Label)   {}
func (NopMeter) Histogram(name string, value float64, labels ...Label) {}

// LogMeter emits each measurement as a debug log line. Good enough for
// demo binaries; real deployments plug in their own Meter.
type LogMeter struct {
	L Logger
}

func (m LogMeter) Counter(name string, value float64, labels ...Label) {
	m.emit("counter", name, value, labels)
}

func (m LogMeter) Histogram(name string, value float64, labels ...Label) {
	m.emit("histogram", name, value, labels)
}

func (m LogMeter) emit(kind, name string, value float64, labels []Label) {
	if m.L == nil {
		return
	}
	lv := ""
	for _, l := range labels {
		lv += " " + l.Key + "=" + l.Value
	}
	m.L.Logf(Debug, "%s %s=%g%s", kind, name, value, lv)
}
