// Package cache provides the bounded memo used for generated palettes.
//
// A dense gradient never changes after construction, so every palette it
// materializes for a given entry count can be reused. Memo keeps the most
// recently requested palettes and evicts the least recently used one when
// the limit is exceeded.
//
//	m := cache.New[int, []byte](8)
//	p, _ := m.GetOrCreate(16, func() []byte { return build(16) })
//
// Memo is safe for concurrent use and must not be copied after creation.
package cache
