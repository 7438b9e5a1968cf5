package tts

const defaultVoiceDescription = "High-quality voice"

// kokoroVoices is used when the server cannot report its voices, and to
// describe the ones it does report.
var kokoroVoices = []Voice{
	{Name: "af_heart", Description: "Natural, clear narrator voice (default) - Great for general content"},
	{Name: "af_sarah", Description: "Expressive female voice - Good for dialogue and emotional content"},
	{Name: "af_bella", Description: "Warm storytelling voice - Perfect for narratives and fiction"},
	{Name: "af_nicole", Description: "Soft, close-mic female voice - Suits calm nonfiction"},
	{Name: "am_adam", Description: "Steady male voice - Good for long-form narration"},
	{Name: "am_michael", Description: "Deep male voice - Suits dramatic fiction"},
	{Name: "bf_emma", Description: "British female voice - Clear and measured"},
	{Name: "bm_george", Description: "British male voice - Classic audiobook tone"},
}

func describe(name string) string {
	for _, v := range kokoroVoices {
		if v.Name == name {
			return v.Description
		}
	}
	return defaultVoiceDescription
}
