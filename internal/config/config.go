package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// Format selects the output kind of a download
type Format string

const (
	FormatVideo Format = "video"
	FormatAudio Format = "audio"
)

// VideoQuality caps the resolution of video downloads
type VideoQuality string

const (
	VideoBestMP4 VideoQuality = "best_mp4"
	Video720p    VideoQuality = "720p"
	Video480p    VideoQuality = "480p"
	Video360p    VideoQuality = "360p"
)

// AudioQuality selects the codec/bitrate of audio extraction
type AudioQuality string

const (
	AudioMP3192 AudioQuality = "mp3_192"
	AudioMP3320 AudioQuality = "mp3_320"
	AudioFLAC   AudioQuality = "flac"
)

// Keys of the persisted JSON record
const (
	KeyFolder       = "folder"
	KeyFormat       = "format"
	KeyVideoQuality = "video_quality"
	KeyAudioQuality = "audio_quality"
	KeyAccentColor  = "accent_color"
)

// DefaultAccentColor is the accent used until the user picks another one
const DefaultAccentColor = "#FF6B35"

const (
	configDirName  = ".rath"
	configFileName = "conf.json"
)

// Config is the in-memory settings record. The running app owns exactly one
// instance; workers receive it by value so mid-download edits are invisible
// to an in-flight session.
type Config struct {
	Folder       string       `mapstructure:"folder" json:"folder"`
	Format       Format       `mapstructure:"format" json:"format"`
	VideoQuality VideoQuality `mapstructure:"video_quality" json:"video_quality"`
	AudioQuality AudioQuality `mapstructure:"audio_quality" json:"audio_quality"`
	AccentColor  string       `mapstructure:"accent_color" json:"accent_color"`
}

// Default returns the built-in record used when keys are absent or the
// settings file is unreadable.
func Default() Config {
	return Config{
		Folder:       defaultDownloadDir(),
		Format:       FormatVideo,
		VideoQuality: VideoBestMP4,
		AudioQuality: AudioMP3192,
		AccentColor:  DefaultAccentColor,
	}
}

// DefaultPath returns the per-user settings file location (~/.rath/conf.json)
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(configDirName, configFileName)
	}
	return filepath.Join(home, configDirName, configFileName)
}

func defaultDownloadDir() string {
	if dir := xdg.UserDirs.Download; dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// Store loads and saves the settings record
type Store struct {
	path string
}

// NewStore creates a store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file and merges stored keys over the defaults;
// stored keys win, missing keys keep their default. Any read or parse
// failure yields the default record, so startup never fails on config.
func (s *Store) Load() Config {
	def := Default()

	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("json")
	v.SetDefault(KeyFolder, def.Folder)
	v.SetDefault(KeyFormat, string(def.Format))
	v.SetDefault(KeyVideoQuality, string(def.VideoQuality))
	v.SetDefault(KeyAudioQuality, string(def.AudioQuality))
	v.SetDefault(KeyAccentColor, def.AccentColor)

	if err := v.ReadInConfig(); err != nil {
		return def
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return def
	}
	return cfg
}

// Save serializes the full record as formatted JSON, creating parent
// directories when needed.
func (s *Store) Save(cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set(KeyFolder, cfg.Folder)
	v.Set(KeyFormat, string(cfg.Format))
	v.Set(KeyVideoQuality, string(cfg.VideoQuality))
	v.Set(KeyAudioQuality, string(cfg.AudioQuality))
	v.Set(KeyAccentColor, cfg.AccentColor)

	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
