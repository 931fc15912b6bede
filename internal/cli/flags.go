package cli

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile     string
	DBPath      string
	AudioDir    string
	AudioFormat string
	Language    string
	BatchFile   string
	List        bool
	SaveAudio   string
	ListModels  bool
	ArchiveData bool

	// Provider selection
	Translator    string
	Transliterate string
	TTSProvider   string

	// OpenAI flags
	OpenAIChatModel string
	OpenAITTSModel  string
	OpenAIVoice     string
	OpenAISpeed     float64

	// Gemini flags
	GeminiModel string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		AudioFormat:     "mp3",
		Language:        "ja",
		Translator:      "openai",
		Transliterate:   "auto",
		TTSProvider:     "openai",
		OpenAIChatModel: "gpt-4o-mini",
		OpenAITTSModel:  "gpt-4o-mini-tts",
		OpenAIVoice:     "alloy",
		OpenAISpeed:     0.95,
		GeminiModel:     "gemini-2.0-flash",
	}
}
