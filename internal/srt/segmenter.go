package srt

import (
	"regexp"
	"strings"
)

// Block is one dialogue block of a subtitle file: the verbatim start
// timestamp and the markup-free text.
type Block struct {
	Timestamp string
	Text      string
}

var (
	reBlockSplit = regexp.MustCompile(`\n{2,}`)
	reTimestamp  = regexp.MustCompile(`(\d{1,2}:\d{2}:\d{2},\d{3}) --> \d{1,2}:\d{2}:\d{2},\d{3}`)
	reMarkup     = regexp.MustCompile(`<[^>]+>`)
)

// Segment splits raw SRT contents into dialogue blocks, in file order.
// Candidates without a timestamp line (sequence numbers, malformed
// entries) are dropped, as are blocks whose text is empty after
// markup tags are replaced with a space and the result is trimmed.
func Segment(raw string) []Block {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")

	var blocks []Block
	for _, candidate := range reBlockSplit.Split(raw, -1) {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" {
			continue
		}

		loc := reTimestamp.FindStringSubmatchIndex(candidate)
		if loc == nil {
			continue
		}
		timestamp := candidate[loc[2]:loc[3]]

		text := reMarkup.ReplaceAllString(candidate[loc[1]:], " ")
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		blocks = append(blocks, Block{Timestamp: timestamp, Text: text})
	}
	return blocks
}
