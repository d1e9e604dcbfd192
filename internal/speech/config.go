package speech

import "os"

// NewBridgeFromEnv assembles a bridge from environment configuration.
// Missing keys or audio binaries simply leave the corresponding
// direction unsupported.
//
//	TOTLI_DEEPGRAM_API_KEY / DEEPGRAM_API_KEY      speech synthesis
//	TOTLI_TTS_MODEL                                 voice model override
//	TOTLI_ASSEMBLYAI_API_KEY / ASSEMBLYAI_API_KEY  speech recognition
func NewBridgeFromEnv() *Bridge {
	var synth Synthesizer
	if key := firstEnv("TOTLI_DEEPGRAM_API_KEY", "DEEPGRAM_API_KEY"); key != "" {
		if dg := NewDeepgramSynthesizer(key, os.Getenv("TOTLI_TTS_MODEL"), NewCommandPlayer()); dg != nil {
			synth = dg
		}
	}
	var rec Recognizer
	if key := firstEnv("TOTLI_ASSEMBLYAI_API_KEY", "ASSEMBLYAI_API_KEY"); key != "" {
		if aai := NewAssemblyAIRecognizer(key); aai != nil {
			rec = aai
		}
	}
	return NewBridge(synth, rec)
}

func firstEnv(names ...string) string {
	for _, n := range names {
		if v := os.Getenv(n); v != "" {
			return v
		}
	}
	return ""
}
