package mux

import (
	"path/filepath"
	"strings"

	"hlsgrab/internal/tracks"
)

// mkvmerge flag constants. The default-track flag is only ever emitted in
// its negative form: mkvmerge treats unflagged tracks as default candidates,
// so marking the non-defaults is sufficient.
const (
	mkvmergeCommand   = "mkvmerge"
	atmosNameSuffix   = " (Dolby Atmos)"
	videoLanguageSlot = "0:en"
)

// Options carries the explicit path configuration for command synthesis.
type Options struct {
	// Tool is the mkvmerge binary to invoke. Empty means "mkvmerge".
	Tool string
	// DownloadDir is where the external downloader placed the component
	// files.
	DownloadDir string
	// OutputFile is the container file mkvmerge should produce.
	OutputFile string
}

// Command is a synthesized external tool invocation.
type Command struct {
	Tool string
	Args []string
}

// Tokens returns the full token sequence including the tool name.
func (c Command) Tokens() []string {
	tokens := make([]string, 0, len(c.Args)+1)
	tokens = append(tokens, c.Tool)
	tokens = append(tokens, c.Args...)
	return tokens
}

// String renders the command for display, quoting tokens containing spaces
// so the output can be pasted into a shell.
func (c Command) String() string {
	tokens := c.Tokens()
	quoted := make([]string, len(tokens))
	for i, token := range tokens {
		if strings.ContainsAny(token, " \t") {
			quoted[i] = "'" + token + "'"
		} else {
			quoted[i] = token
		}
	}
	return strings.Join(quoted, " ")
}

// Synthesize builds the mkvmerge invocation for the given track collections.
// Video tracks always precede audio, audio always precede subtitles; within
// each group the selection/manifest order is preserved. Identical inputs
// produce identical output.
func Synthesize(videos []tracks.VideoTrack, audio []tracks.AudioTrack, subtitles []tracks.SubtitleTrack, opts Options) Command {
	tool := opts.Tool
	if tool == "" {
		tool = mkvmergeCommand
	}
	args := []string{"--output", opts.OutputFile}

	for _, video := range videos {
		args = append(args, "--language", videoLanguageSlot)
		args = append(args, "--track-name", "0:"+video.CodecLabel)
		if !video.Primary {
			args = append(args, "--default-track-flag", "0:no")
		}
		args = append(args, filepath.Join(opts.DownloadDir, video.FileName))
	}

	for _, track := range audio {
		args = append(args, "--language", "0:"+track.Language)
		name := track.Name
		if track.Codec == tracks.CodecEAC3 {
			name += atmosNameSuffix
		}
		args = append(args, "--track-name", "0:"+name)
		if !track.Default {
			args = append(args, "--default-track-flag", "0:no")
		}
		if track.DescribesVideo() {
			args = append(args, "--visual-impaired-flag", "0:yes")
		}
		args = append(args, filepath.Join(opts.DownloadDir, track.FileName))
	}

	for _, track := range subtitles {
		args = append(args, "--language", "0:"+track.Language)
		args = append(args, "--track-name", "0:"+track.Name)
		if !track.Default {
			args = append(args, "--default-track-flag", "0:no")
		}
		args = append(args, filepath.Join(opts.DownloadDir, track.FileName))
	}

	return Command{Tool: tool, Args: args}
}
