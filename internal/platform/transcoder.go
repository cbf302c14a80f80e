package platform

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Transcoder binaries invoked through yt-dlp's postprocessing
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"

	// BundledBinDir is the directory holding the bundled transcoder binaries,
	// relative to the install root.
	BundledBinDir = "bin"
)

// TranscoderDir returns the directory yt-dlp should look in for ffmpeg.
// Packaged builds ship the binaries in bin/ next to the executable; when
// running from source that directory usually does not exist, so the working
// directory's bin/ is tried next. An empty string means "use PATH".
func TranscoderDir() string {
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Join(filepath.Dir(exe), BundledBinDir)
		if dirExists(dir) {
			return dir
		}
	}

	if wd, err := os.Getwd(); err == nil {
		dir := filepath.Join(wd, BundledBinDir)
		if dirExists(dir) {
			return dir
		}
	}

	return ""
}

// TranscoderAvailable reports whether ffmpeg is reachable, either bundled or
// on PATH. Surfaced in the settings view so the user learns about a missing
// tool before a download fails on it.
func TranscoderAvailable() bool {
	if dir := TranscoderDir(); dir != "" {
		if fileExists(filepath.Join(dir, ffmpegBinaryName())) {
			return true
		}
	}

	_, err := exec.LookPath(FFmpegCommand)
	return err == nil
}

func ffmpegBinaryName() string {
	if runtime.GOOS == OSWindows {
		return FFmpegCommand + ".exe"
	}
	return FFmpegCommand
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
