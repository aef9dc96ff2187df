// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package effects

import (
	"regexp"
	"strings"
	"time"
)

// Typewriter timing
const (
	LetterDelay      = 19500 * time.Microsecond
	BoxFadeDuration  = 50 * time.Millisecond
	FadeDelay        = 5 * time.Second
	MainFadeDuration = 250 * time.Millisecond
)

// Scramble timing
const (
	CyclesPerLetter = 5
	ShuffleTime     = 50 * time.Millisecond
)

// Page transition timing
const (
	// AdvanceDelay is how long the header and footer stay expanded on a
	// forward transition before the next question shows
	AdvanceDelay = time.Second
	// DirectionReset is how long a navigation direction stays set
	DirectionReset = 500 * time.Millisecond
)

// Letter is one character of a typewriter line and when it appears
type Letter struct {
	Char  string
	Delay time.Duration
}

// Typewriter splits text into letters, each appearing LetterDelay after the
// previous one.
func Typewriter(text string) []Letter {
	letters := make([]Letter, 0, len(text))
	i := 0
	for _, r := range text {
		letters = append(letters, Letter{
			Char:  string(r),
			Delay: time.Duration(i) * LetterDelay,
		})
		i++
	}
	return letters
}

// TypewriterDuration is when the last letter of text has fully appeared
func TypewriterDuration(text string) time.Duration {
	n := len([]rune(text))
	if n == 0 {
		return 0
	}
	return time.Duration(n-1)*LetterDelay + BoxFadeDuration
}

var wordPattern = regexp.MustCompile(`\S+|\s+`)

// ScrambleFrames returns every frame of the scramble effect. In frame c each
// word not yet settled is rotated left by c characters; a word settles once
// c/CyclesPerLetter reaches its length. The last frame is always text.
func ScrambleFrames(text string) []string {
	words := wordPattern.FindAllString(text, -1)
	if len(words) == 0 {
		return []string{text}
	}

	maxCycles := 0
	for _, w := range words {
		if n := len([]rune(strings.TrimSpace(w))) * CyclesPerLetter; n > maxCycles {
			maxCycles = n
		}
	}

	frames := make([]string, 0, maxCycles+1)
	for cycle := 0; cycle < maxCycles; cycle++ {
		var b strings.Builder
		for _, w := range words {
			if strings.TrimSpace(w) == "" || cycle/CyclesPerLetter >= len([]rune(w)) {
				b.WriteString(w)
				continue
			}
			b.WriteString(shiftWord(w, cycle))
		}
		frames = append(frames, b.String())
	}
	return append(frames, text)
}

// ScrambleDuration is how long ScrambleFrames takes to play
func ScrambleDuration(text string) time.Duration {
	return time.Duration(len(ScrambleFrames(text))-1) * ShuffleTime
}

func shiftWord(word string, shift int) string {
	chars := []rune(word)
	s := shift % len(chars)
	return string(chars[s:]) + string(chars[:s])
}
