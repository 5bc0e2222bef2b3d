/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

// Package dialogue segments raw story prose into typed units (dialogue,
// narrative, action, thought), attributes dialogue to speakers, and assigns
// a synthesized-voice profile to each detected character.
//
// The pipeline runs in strictly ordered passes over one local segment list:
// segment lines, register characters, assign voices, aggregate. The parse
// is a deterministic pure computation; retries belong to the caller.
package dialogue

import (
	"context"

	"storyvoice/internal/voices"
)

// readingSpeed is the fixed characters-per-minute estimate used for the
// ReadingTime field of ParsedContent.
const readingSpeed = 200

type options struct {
	voiceMap   map[string]voices.Profile
	onDiscover func(CharacterVoiceMapping)
	onProgress func(done, total int)
}

// Option configures a parse invocation. The parser holds no ambient state;
// the voice map and observers are plain per-call parameters.
type Option func(*options)

// WithVoiceMap supplies pre-existing character-to-voice assignments, keyed
// by exact character name. The parser never mutates the map.
func WithVoiceMap(m map[string]voices.Profile) Option {
	return func(o *options) { o.voiceMap = m }
}

// WithDiscoveryObserver registers a callback fired once per newly detected
// character, in order of first appearance, before Parse returns. A panic in
// the callback propagates and no result is published.
func WithDiscoveryObserver(fn func(CharacterVoiceMapping)) Option {
	return func(o *options) { o.onDiscover = fn }
}

// WithProgressObserver registers a callback invoked after each segment is
// registered, for incremental UI feedback. It has no effect on the result.
func WithProgressObserver(fn func(done, total int)) Option {
	return func(o *options) { o.onProgress = fn }
}

// Parse runs the full pipeline over text and returns the aggregated result.
// Empty input yields an empty ParsedContent, not an error.
func Parse(text string, opts ...Option) (*ParsedContent, error) {
	return ParseContext(context.Background(), text, opts...)
}

// ParseContext is Parse with cancellation between lines for incremental
// callers. On cancellation no partial result is returned: the error is
// ctx.Err() and the ParsedContent is nil.
func ParseContext(ctx context.Context, text string, opts ...Option) (*ParsedContent, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	segs := segmentLines(text)
	reg := newRegistry()
	for i, seg := range segs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		reg.observe(seg, o.voiceMap, o.onDiscover)
		if o.onProgress != nil {
			o.onProgress(i+1, len(segs))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	assignVoices(segs, reg)
	return aggregate(text, segs, reg.mappings()), nil
}

// aggregate assembles the final ParsedContent from the processed segments
// and the first-appearance-ordered character mappings.
func aggregate(text string, segs []Segment, mappings []CharacterVoiceMapping) *ParsedContent {
	pc := &ParsedContent{
		OriginalText:      text,
		Segments:          segs,
		CharacterMappings: mappings,
		TotalCharacters:   len(mappings),
		ReadingTime:       (len(text) + readingSpeed - 1) / readingSpeed,
	}
	for _, s := range segs {
		switch s.Type {
		case SegmentDialogue:
			pc.DialogueSegments = append(pc.DialogueSegments, s)
		case SegmentNarrative:
			pc.NarrativeSegments = append(pc.NarrativeSegments, s)
		}
	}
	return pc
}
