/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package dialogue

import (
	"fmt"
	"strings"

	"storyvoice/internal/voices"
)

// registry accumulates character voice mappings over one parse run. It is
// allocated fresh per invocation and discarded after aggregation; nothing
// in here survives across calls.
type registry struct {
	order  []string                          // lowercase names, first-appearance order
	byName map[string]*CharacterVoiceMapping // keyed by lowercase name
}

func newRegistry() *registry {
	return &registry{byName: map[string]*CharacterVoiceMapping{}}
}

// observe registers the speaker of one dialogue segment. onDiscover, if
// non-nil, fires once per newly seen character with a snapshot of the fresh
// mapping. Segments without a speaker are ignored.
func (r *registry) observe(seg Segment, voiceMap map[string]voices.Profile, onDiscover func(CharacterVoiceMapping)) {
	if seg.Type != SegmentDialogue || seg.Speaker == "" {
		return
	}
	key := strings.ToLower(seg.Speaker)
	if m, ok := r.byName[key]; ok {
		m.DialogueCount++
		if seg.Emotion != "" && !containsString(m.EmotionalRange, seg.Emotion) {
			m.EmotionalRange = append(m.EmotionalRange, seg.Emotion)
		}
		return
	}

	tag := seg.SpeakerTag
	if tag == "" {
		tag = r.nextTag()
	}
	m := &CharacterVoiceMapping{
		CharacterName:  seg.Speaker,
		SpeakerTag:     tag,
		VoiceProfile:   voices.Resolve(seg.Speaker, voiceMap),
		DialogueCount:  1,
		EmotionalRange: []string{},
	}
	if seg.Emotion != "" {
		m.EmotionalRange = append(m.EmotionalRange, seg.Emotion)
	}
	r.order = append(r.order, key)
	r.byName[key] = m
	if onDiscover != nil {
		onDiscover(*m)
	}
}

// nextTag generates a tag for a speaker without explicit [Sn] markup, using
// the count of characters already registered. The generated number space is
// not reconciled with explicitly authored tags, so a generated tag can
// collide in value with an explicit one later in the text.
func (r *registry) nextTag() string {
	return fmt.Sprintf("[S%d]", len(r.order))
}

// lookup returns the mapping for a speaker name, if registered.
func (r *registry) lookup(speaker string) (*CharacterVoiceMapping, bool) {
	m, ok := r.byName[strings.ToLower(speaker)]
	return m, ok
}

// mappings returns the accumulated records in first-appearance order.
func (r *registry) mappings() []CharacterVoiceMapping {
	out := make([]CharacterVoiceMapping, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *r.byName[key])
	}
	return out
}

// assignVoices is the second pass: every dialogue segment with a registered
// speaker gets its mapping's tag, and every segment is marked processed.
// Text, emotion, voice instructions and offsets are left untouched.
func assignVoices(segs []Segment, r *registry) {
	for i := range segs {
		if segs[i].Type == SegmentDialogue && segs[i].Speaker != "" {
			if m, ok := r.lookup(segs[i].Speaker); ok {
				segs[i].SpeakerTag = m.SpeakerTag
			}
		}
		segs[i].IsProcessed = true
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
