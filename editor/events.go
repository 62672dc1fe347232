package editor

import "github.com/iw2rmb/slicestr/buffer"

// ChangeEvent describes the text after an edit.
type ChangeEvent struct {
	Text string
	Len  int
	Cap  int
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		Text: b.String(),
		Len:  b.Len(),
		Cap:  b.Cap(),
	}
}

func (m *Model) notifyChange() {
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf))
	}
}
