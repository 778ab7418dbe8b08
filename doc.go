// Package mcore is a small toolkit of in-memory containers with explicit
// ownership of their payloads.
//
// What is inside:
//
//	core/     Value: opaque payload plus borrow/own mode and release hook
//	hashmap/  fixed-bucket chained hash map (DJB2), string keys
//	stack/    linked LIFO stack
//	trie/     26-ary trie over the lowercase alphabet a..z
//	logging/  leveled file logger on zerolog
//	guid/     random GUIDs, upper-case 8-4-4-4-12 text form
//	report/   pass/fail tally driven by testify assertions
//	config/   driver settings via viper (file, env, flags)
//	scenario/ acceptance suites for the containers and guid
//	cmd/mcore CLI running the suites and printing GUIDs
//
// Containers are not safe for concurrent use; guard them externally.
// None of them log: logging is the caller's concern.
//
// Quick example:
//
//	m, _ := hashmap.New(32)
//	defer m.Free()
//	_ = m.Insert("answer", core.Own(buf, func(any) { pool.Put(buf) }))
//	v, ok := m.Search("answer")
package mcore
