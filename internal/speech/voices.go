package speech

// VoiceConfig describes how an utterance should be rendered for a
// learning language.
type VoiceConfig struct {
	// Tag is the BCP 47 language tag passed to the synthesis engine.
	Tag string
	// Rate slows speech down for young listeners. 1.0 is the engine default.
	Rate float64
	// Pitch raises the voice slightly so it sounds friendlier.
	Pitch float64
}

var voices = map[string]VoiceConfig{
	"english": {Tag: "en-US", Rate: 0.8, Pitch: 1.2},
	"urdu":    {Tag: "ur-PK", Rate: 0.7, Pitch: 1.1},
	"arabic":  {Tag: "ar-SA", Rate: 0.7, Pitch: 1.0},
	"spanish": {Tag: "es-ES", Rate: 0.8, Pitch: 1.1},
}

// VoiceFor returns the voice settings for a learning language. Unknown
// languages fall back to English rather than failing.
func VoiceFor(language string) VoiceConfig {
	if v, ok := voices[language]; ok {
		return v
	}
	return voices["english"]
}
