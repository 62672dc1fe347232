package editor

// Config configures the editor Model.
type Config struct {
	// Capacity is the size in bytes of the region backing the text.
	// Default: 64. Ignored when Region is set.
	Capacity int

	// Region, if non-nil, is caller-owned memory to bind instead of
	// allocating Capacity bytes. It stays bound until Model.Release.
	Region []byte

	// Initial text. Runes that do not fit are dropped.
	Text string

	Prompt      string // default: "> "
	Placeholder string

	// Style is used as given; pass DefaultStyle() for the stock look.
	Style Style

	// KeyMap defaults to DefaultKeyMap() when no binding has keys.
	KeyMap KeyMap

	// OnChange is called after every edit that changes the text.
	OnChange func(ChangeEvent)

	// OnSubmit receives the text when the Submit binding fires; the field is
	// cleared afterwards.
	OnSubmit func(text string)
}

const defaultCapacity = 64

func (c Config) withDefaults() Config {
	if c.Capacity <= 0 {
		c.Capacity = defaultCapacity
	}
	if c.Prompt == "" {
		c.Prompt = "> "
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
