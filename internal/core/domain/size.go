package domain

// SizeEntry records the measured sizes of one build artifact.
type SizeEntry struct {
	Path   string `json:"path"`
	Raw    int64  `json:"raw"`
	Gzip   int64  `json:"gz"`
	Brotli int64  `json:"br"`
	Digest string `json:"digest,omitzero"`
}

// SizeDelta is the difference between a measurement and the previous run.
type SizeDelta struct {
	Raw    int64
	Gzip   int64
	Brotli int64
}

// Compare returns the delta of e against prev. A nil prev means the file is new.
func (e SizeEntry) Compare(prev *SizeEntry) (SizeDelta, bool) {
	if prev == nil {
		return SizeDelta{}, false
	}
	return SizeDelta{
		Raw:    e.Raw - prev.Raw,
		Gzip:   e.Gzip - prev.Gzip,
		Brotli: e.Brotli - prev.Brotli,
	}, true
}

// Unchanged reports whether e has the same content digest as prev.
func (e SizeEntry) Unchanged(prev *SizeEntry) bool {
	return prev != nil && e.Digest != "" && e.Digest == prev.Digest
}
