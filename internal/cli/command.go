package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/kotoba/internal"
)

// DefaultDataDir returns the default directory for the database and audio
// files.
func DefaultDataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "state", "kotoba")
}

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kotoba [sentence]",
		Short: "English to Japanese translation cache",
		Long: `kotoba translates English sentences to Japanese with Hepburn
romanization and synthesized pronunciation audio. Results are cached in a
local database, so repeating a sentence costs no API calls.

Examples:
  kotoba "Hello"                  # Translate a sentence
  kotoba --batch sentences.txt    # Pre-warm the cache from a file
  kotoba --list                   # Show all cached translations`,
		Args:    cobra.MaximumNArgs(1),
		Version: internal.Version,
	}

	setupFlags(rootCmd, flags)

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	defaultDB := filepath.Join(DefaultDataDir(), "translations.db")

	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.kotoba.yaml)")

	// Local flags
	cmd.Flags().StringVar(&flags.DBPath, "db", defaultDB, "Path to the translation database")
	cmd.Flags().StringVar(&flags.AudioDir, "audio-dir", "", "Store audio as files in this directory instead of database blobs")
	cmd.Flags().StringVarP(&flags.AudioFormat, "format", "f", flags.AudioFormat, "Audio format (mp3 or wav)")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", flags.Language, "Language code for speech synthesis")
	cmd.Flags().StringVar(&flags.BatchFile, "batch", "", "Translate sentences from file (one per line)")
	cmd.Flags().BoolVar(&flags.List, "list", false, "List all cached translations")
	cmd.Flags().StringVar(&flags.SaveAudio, "save-audio", "", "Write the pronunciation audio to this file")
	cmd.Flags().BoolVar(&flags.ListModels, "list-models", false, "List available OpenAI models for the current API key")
	cmd.Flags().BoolVar(&flags.ArchiveData, "archive", false, "Archive the current cache data directory and start fresh")

	// Provider flags
	cmd.Flags().StringVar(&flags.Translator, "translator", flags.Translator, "Translation provider: openai or gemini")
	cmd.Flags().StringVar(&flags.Transliterate, "transliterator", flags.Transliterate, "Transliteration engine: kana, openai or auto")
	cmd.Flags().StringVar(&flags.TTSProvider, "tts-provider", flags.TTSProvider, "Speech provider: openai or espeak")

	// OpenAI flags
	cmd.Flags().StringVar(&flags.OpenAIChatModel, "openai-chat-model", flags.OpenAIChatModel, "OpenAI chat model for translation and romanization")
	cmd.Flags().StringVar(&flags.OpenAITTSModel, "openai-model", flags.OpenAITTSModel, "OpenAI TTS model: tts-1, tts-1-hd, gpt-4o-mini-tts")
	cmd.Flags().StringVar(&flags.OpenAIVoice, "openai-voice", flags.OpenAIVoice, "OpenAI voice: alloy, ash, ballad, coral, echo, fable, onyx, nova, sage, shimmer, verse")
	cmd.Flags().Float64Var(&flags.OpenAISpeed, "openai-speed", flags.OpenAISpeed, "OpenAI speech speed (0.25 to 4.0)")

	// Gemini flags
	cmd.Flags().StringVar(&flags.GeminiModel, "gemini-model", flags.GeminiModel, "Gemini model for translation")

	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("store.db", cmd.Flags().Lookup("db"))
	viper.BindPFlag("store.audio_dir", cmd.Flags().Lookup("audio-dir"))
	viper.BindPFlag("audio.format", cmd.Flags().Lookup("format"))
	viper.BindPFlag("audio.language", cmd.Flags().Lookup("language"))
	viper.BindPFlag("audio.provider", cmd.Flags().Lookup("tts-provider"))
	viper.BindPFlag("audio.openai_model", cmd.Flags().Lookup("openai-model"))
	viper.BindPFlag("audio.openai_voice", cmd.Flags().Lookup("openai-voice"))
	viper.BindPFlag("audio.openai_speed", cmd.Flags().Lookup("openai-speed"))
	viper.BindPFlag("translate.provider", cmd.Flags().Lookup("translator"))
	viper.BindPFlag("translate.openai_model", cmd.Flags().Lookup("openai-chat-model"))
	viper.BindPFlag("translate.gemini_model", cmd.Flags().Lookup("gemini-model"))
	viper.BindPFlag("romaji.engine", cmd.Flags().Lookup("transliterator"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".kotoba" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".kotoba")
	}

	// Environment variables
	viper.SetEnvPrefix("KOTOBA")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// GetOpenAIKey retrieves the OpenAI API key from environment or config
func GetOpenAIKey() string {
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("openai_key")
}

// GetGeminiKey retrieves the Gemini API key from environment or config
func GetGeminiKey() string {
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		return key
	}
	return viper.GetString("gemini_key")
}
