// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package survey

import "strings"

// Separator joins the segments of a stored question or answer set.
// There is no escaping: a segment containing it cannot be decoded back.
const Separator = "|"

// EncodeQuestion packs a question text and its options into one field
func EncodeQuestion(text string, options []string) string {
	segments := make([]string, 0, len(options)+1)
	segments = append(segments, text)
	segments = append(segments, options...)
	return strings.Join(segments, Separator)
}

// DecodeQuestion splits a stored question field into its text and options.
// An empty field decodes to an empty text with no options.
func DecodeQuestion(raw string) (text string, options []string) {
	if raw == "" {
		return "", []string{}
	}
	parts := strings.Split(raw, Separator)
	return parts[0], parts[1:]
}

// EncodeAnswers packs an ordered answer set into one field
func EncodeAnswers(answers []string) string {
	return strings.Join(answers, Separator)
}

// DecodeAnswers splits a stored answer field back into its ordered answers.
// An empty field is a single empty answer, so an empty answer set does not
// survive a round trip.
func DecodeAnswers(raw string) []string {
	return strings.Split(raw, Separator)
}

// ContainsSeparator reports whether any segment would corrupt an encoding
func ContainsSeparator(segments ...string) bool {
	for _, s := range segments {
		if strings.Contains(s, Separator) {
			return true
		}
	}
	return false
}
