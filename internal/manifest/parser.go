package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	tagHeader    = "#EXTM3U"
	tagMedia     = "#EXT-X-MEDIA:"
	tagStreamInf = "#EXT-X-STREAM-INF:"
)

// Parse reads master playlist text and builds the playlist object graph.
// Lines other than EXT-X-MEDIA and EXT-X-STREAM-INF (plus the variant URI
// line that follows each STREAM-INF tag) are ignored.
func Parse(r io.Reader) (*Playlist, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	playlist := &Playlist{}
	var pending *StreamInfo
	first := true

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if first {
			if !strings.HasPrefix(line, tagHeader) {
				return nil, fmt.Errorf("not an extended M3U playlist: first line %q", line)
			}
			first = false
			continue
		}

		switch {
		case strings.HasPrefix(line, tagMedia):
			entry, err := parseMediaLine(strings.TrimPrefix(line, tagMedia))
			if err != nil {
				return nil, fmt.Errorf("parse media entry %q: %w", line, err)
			}
			playlist.Media = append(playlist.Media, entry)
		case strings.HasPrefix(line, tagStreamInf):
			info, err := parseStreamInfLine(strings.TrimPrefix(line, tagStreamInf))
			if err != nil {
				return nil, fmt.Errorf("parse variant stream %q: %w", line, err)
			}
			pending = &info
		case strings.HasPrefix(line, "#"):
			// Unrelated tag.
		default:
			if pending == nil {
				return nil, fmt.Errorf("variant URI %q without preceding stream info", line)
			}
			playlist.Variants = append(playlist.Variants, VariantStream{URI: line, Info: *pending})
			pending = nil
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read playlist: %w", err)
	}
	if first {
		return nil, fmt.Errorf("empty playlist")
	}
	if pending != nil {
		return nil, fmt.Errorf("stream info without a variant URI line")
	}
	return playlist, nil
}

func parseMediaLine(attrs string) (MediaEntry, error) {
	values, err := parseAttributeList(attrs)
	if err != nil {
		return MediaEntry{}, err
	}
	entry := MediaEntry{
		Type:     MediaType(values["TYPE"]),
		URI:      values["URI"],
		Name:     values["NAME"],
		Language: values["LANGUAGE"],
		GroupID:  values["GROUP-ID"],
	}
	if raw, ok := values["CHARACTERISTICS"]; ok && raw != "" {
		for _, c := range strings.Split(raw, ",") {
			if c = strings.TrimSpace(c); c != "" {
				entry.Characteristics = append(entry.Characteristics, c)
			}
		}
	}
	if entry.Type == "" {
		return MediaEntry{}, fmt.Errorf("missing TYPE attribute")
	}
	return entry, nil
}

func parseStreamInfLine(attrs string) (StreamInfo, error) {
	values, err := parseAttributeList(attrs)
	if err != nil {
		return StreamInfo{}, err
	}

	info := StreamInfo{
		Codecs:          values["CODECS"],
		VideoRange:      values["VIDEO-RANGE"],
		Audio:           values["AUDIO"],
		Video:           values["VIDEO"],
		Subtitles:       values["SUBTITLES"],
		HDCPLevel:       values["HDCP-LEVEL"],
		PathwayID:       values["PATHWAY-ID"],
		StableVariantID: values["STABLE-VARIANT-ID"],
	}

	// CLOSED-CAPTIONS=NONE is an explicit declaration of absence.
	if cc := values["CLOSED-CAPTIONS"]; cc != "" && cc != "NONE" {
		info.ClosedCaptions = cc
	}

	if raw, ok := values["BANDWIDTH"]; ok {
		info.Bandwidth, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return StreamInfo{}, fmt.Errorf("bandwidth %q: %w", raw, err)
		}
	}
	if raw, ok := values["AVERAGE-BANDWIDTH"]; ok {
		info.AverageBandwidth, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return StreamInfo{}, fmt.Errorf("average bandwidth %q: %w", raw, err)
		}
	}
	if raw, ok := values["PROGRAM-ID"]; ok {
		info.ProgramID, err = strconv.Atoi(raw)
		if err != nil {
			return StreamInfo{}, fmt.Errorf("program id %q: %w", raw, err)
		}
	}
	if raw, ok := values["FRAME-RATE"]; ok {
		info.FrameRate, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return StreamInfo{}, fmt.Errorf("frame rate %q: %w", raw, err)
		}
	}
	if raw, ok := values["RESOLUTION"]; ok {
		info.Width, info.Height, err = parseResolution(raw)
		if err != nil {
			return StreamInfo{}, err
		}
	}
	return info, nil
}

func parseResolution(raw string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(raw), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("resolution %q: expected <width>x<height>", raw)
	}
	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("resolution width %q: %w", raw, err)
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("resolution height %q: %w", raw, err)
	}
	return width, height, nil
}

// parseAttributeList splits an EXT-X attribute list into key/value pairs.
// Values may be quoted strings containing commas, per RFC 8216 §4.2.
func parseAttributeList(attrs string) (map[string]string, error) {
	values := make(map[string]string)
	rest := strings.TrimSpace(attrs)
	for rest != "" {
		eq := strings.IndexByte(rest, '=')
		if eq <= 0 {
			return nil, fmt.Errorf("malformed attribute list near %q", rest)
		}
		key := strings.TrimSpace(rest[:eq])
		rest = rest[eq+1:]

		var value string
		if strings.HasPrefix(rest, `"`) {
			end := strings.IndexByte(rest[1:], '"')
			if end < 0 {
				return nil, fmt.Errorf("unterminated quoted value for %s", key)
			}
			value = rest[1 : end+1]
			rest = rest[end+2:]
			rest = strings.TrimPrefix(strings.TrimSpace(rest), ",")
		} else {
			comma := strings.IndexByte(rest, ',')
			if comma < 0 {
				value = rest
				rest = ""
			} else {
				value = rest[:comma]
				rest = rest[comma+1:]
			}
		}
		values[key] = strings.TrimSpace(value)
		rest = strings.TrimSpace(rest)
	}
	return values, nil
}
