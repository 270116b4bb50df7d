package logging

// ChunkSampler keeps chunk-scan progress logs readable by emitting only
// every Nth chunk instead of all of them.
type ChunkSampler struct {
	every int
}

// NewChunkSampler constructs a sampler that emits every Nth chunk
// (default 10).
func NewChunkSampler(every int) *ChunkSampler {
	if every <= 0 {
		every = 10
	}
	return &ChunkSampler{every: every}
}

// ShouldLog reports whether the 1-based chunk index deserves a progress
// line.
func (s *ChunkSampler) ShouldLog(chunk int) bool {
	if s == nil {
		return true
	}
	return chunk > 0 && chunk%s.every == 0
}
