package proptest

import "pgregory.net/rapid"

var (
	iterDirGen = rapid.StringMatching(`iter[0-9a-f]{8}`)
	stemGen    = rapid.StringMatching(`[a-z][a-z0-9_-]{0,11}`)
	suffixGen  = rapid.StringMatching(`\.[a-zA-Z0-9]{1,5}`)

	knownExtGen = rapid.SampledFrom([]string{
		".pdf", ".txt", ".md", ".jpg", ".PNG", ".mp3", ".mkv",
		".zip", ".go", ".json", ".iso", ".ttf", ".ics", ".exe",
	})
)

// fileNameGen draws file names that are valid run candidates: never
// hidden, with a known extension, a random extension, or none at all.
func fileNameGen() *rapid.Generator[string] {
	return rapid.Custom(func(t *rapid.T) string {
		stem := stemGen.Draw(t, "stem")
		switch rapid.IntRange(0, 2).Draw(t, "extKind") {
		case 0:
			return stem
		case 1:
			return stem + knownExtGen.Draw(t, "knownExt")
		default:
			return stem + suffixGen.Draw(t, "suffix")
		}
	})
}
